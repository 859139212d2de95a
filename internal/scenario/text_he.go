package scenario

var textHE = map[int]Text{
	1: {
		Name:                 "מגמה שורית אמיתית 🚀",
		MarketInterpretation: "המחיר עולה, הקונים פועלים באגרסיביות ופוזיציות חדשות ממשיכות להיפתח. זו מגמה בריאה שנתמכת בכסף חדש שנכנס לשוק.",
		SmartMoney:           "השחקנים הגדולים בונים פוזיציות לונג ומוסיפים בעליות. הם לא נלחמים בתנועה.",
		Retail:               "הסוחרים הקטנים מתחילים לשים לב לתנועה ורודפים אחריה באיחור, לרוב עם מינוף גבוה מדי.",
		Recommendation:       "העדף לונגים בתיקונים לאזורי תמיכה. שמור סטופ מתחת לשפל הגבוה האחרון והזז אותו עם המגמה.",
		VolumeInsights: volumeInsights(
			"ווליום גבוה מאשר את המגמה. השתתפות חזקה תומכת בהמשך.",
			"ווליום רגיל - המגמה בריאה אך לא אופורית. גודל פוזיציה סטנדרטי.",
			"ווליום נמוך מעט מדאיג - המגמה עלולה להיחלש. חפש אישור נוסף לפני כניסה.",
		),
	},
	2: {
		Name:                 "סקוויז שורטים ⚡",
		MarketInterpretation: "המחיר עולה עם קנייה אגרסיבית בזמן שה-Open Interest יורד. השורטים נאלצים לסגור, וזה מה שמניע את התנועה ולא ביקוש חדש ללונגים.",
		SmartMoney:           "הכסף החכם נותן לסקוויז לרוץ ומוכר בקפיצות לשורטים הלכודים.",
		Retail:               "שורטים של סוחרים קטנים מחוסלים, ולונגים מאוחרים קונים את הנרות האנכיים.",
		Recommendation:       "אל תרדוף. סקוויזים נגמרים בפתאומיות כשסגירת השורטים מסתיימת. ממש רווחים בעליות וחכה שה-Open Interest ייבנה מחדש לפני לונג חדש.",
		VolumeInsights: volumeInsights(
			"ווליום גבוה מסמן סקוויז אגרסיבי - צפה להיפוך חד כשהחיסולים ייגמרו.",
			"ווליום רגיל מרמז על סגירת שורטים מסודרת שעשויה להימשך עוד קצת.",
			"סקוויז בווליום נמוך הוא שביר - התנועה עלולה להימחק במהירות.",
		),
	},
	3: {
		Name:                 "ראלי מונע ספוט 💪",
		MarketInterpretation: "המחיר מטפס על קנייה נטו בשוק בלי כניסה של מינוף חדש. הביקוש מגיע בעיקר מקוני ספוט.",
		SmartMoney:           "הכסף החכם צובר ספוט ונמנע מחשיפה ממונפת.",
		Retail:               "הסוחרים הקטנים בעיקר בצד ומחכים לתיקון שאולי לא יגיע.",
		Recommendation:       "חיובי ללונגים. ראלי מונע ספוט נוטה להיות יציב יותר, קנה ירידות עם מינוף מתון.",
		VolumeInsights: volumeInsights(
			"ווליום גבוה מראה ביקוש ספוט אמיתי - סימן חזק לעלייה בת-קיימא.",
			"ווליום רגיל - צבירה יציבה, הראלי יכול להמשיך לטפס.",
			"ווליום נמוך משמעו ביקוש דליל - הראלי עלול להיעצר בהתנגדות הבאה.",
		),
	},
	4: {
		Name:                 "הפצה נסתרת ⚠️",
		MarketInterpretation: "המחיר עולה אבל פקודות השוק הן מכירה נטו בזמן שה-Open Interest גדל. המוכרים סופגים את העלייה ושורטים חדשים נפתחים לתוכה.",
		SmartMoney:           "השחקנים הגדולים מפיצים לתוך העליות ובונים שורט עם פקודות לימיט מעל השוק.",
		Retail:               "הסוחרים הקטנים רואים נרות ירוקים וממשיכים לקנות, בלי לדעת שההיצע מצטבר.",
		Recommendation:       "הימנע מלונגים חדשים. הדק סטופים בפוזיציות קיימות וחכה לשיא נמוך יותר כטריגר לשורט.",
		VolumeInsights: volumeInsights(
			"ווליום גבוה עם הדיברגנס הזה הוא אזהרת הפצה חזקה.",
			"ווליום רגיל - ההפצה הדרגתית, השיא עשוי לקחת זמן להיווצר.",
			"עלייה בווליום נמוך עם לחץ מכירות מתחת חלשה מאוד - היפוך סביר.",
		),
	},
	5: {
		Name:                 "ראלי חלש - מימוש רווחים",
		MarketInterpretation: "המחיר זוחל למעלה בזמן שמכירות בשוק שולטות וה-Open Interest יורד. בעלי לונגים סוגרים פוזיציות לתוך העלייה.",
		SmartMoney:           "הכסף החכם מממש רווחים ומקטין חשיפה במקום להוסיף.",
		Retail:               "הסוחרים הקטנים רואים במחיר הגבוה חוזק וקונים מהשחקנים הגדולים שיוצאים.",
		Recommendation:       "הטיה דובית. ממש רווחים בלונגים וחפש כניסות לשורט בכישלון בהתנגדות.",
		VolumeInsights: volumeInsights(
			"מימוש רווחים בווליום גבוה מסמן את סוף הגל העולה.",
			"ווליום רגיל - יציאה יציבה של לונגים, המומנטום דועך.",
			"ווליום נמוך - הראלי נגמר לו הדלק ויכול להתהפך בכל רגע.",
		),
	},
	6: {
		Name:                 "ספיגה פסיבית בשיאים",
		MarketInterpretation: "המחיר עולה מעט בזמן שמוכרים אגרסיביים שולטים וה-Open Interest יציב. קוני לימיט סופגים את המכירות בינתיים.",
		SmartMoney:           "שחקנים גדולים נמצאים בשני הצדדים וסופגים היצע בלי להוסיף מינוף.",
		Retail:               "הסוחרים הקטנים חלוקים ולא בטוחים, וסוחרים ברעש.",
		Recommendation:       "חכה להכרעה. אם הספיגה מחזיקה תבוא פריצה, ואם הביקושים נעלמים צפה לירידה מהירה. שמור על פוזיציות קטנות.",
		VolumeInsights: volumeInsights(
			"ספיגה בווליום גבוה - תנועה מכרעת קרובה, עקוב איזה צד נשבר.",
			"ווליום רגיל - הקיפאון עשוי להימשך עוד זמן מה.",
			"ווליום נמוך - מעט שכנוע לשני הכיוונים, הישאר סבלני.",
		),
	},
	7: {
		Name:                 "טיפוס ממונף 📈",
		MarketInterpretation: "המחיר עולה עם זרימת פקודות מאוזנת בזמן שה-Open Interest מטפס. לונגים נפתחים דרך פקודות לימיט.",
		SmartMoney:           "סוחרים מיודעים בונים פוזיציות בסבלנות בלי לרדוף.",
		Retail:               "הסוחרים הקטנים מוסיפים לונגים ממונפים ככל שהביטחון גדל.",
		Recommendation:       "שורי במידה. סחור עם המגמה אבל עקוב אחר המימון והמינוף, לונגים צפופים עלולים להימחק.",
		VolumeInsights: volumeInsights(
			"ווליום גבוה תומך בבניית המינוף - המשך סביר.",
			"ווליום רגיל - טיפוס יציב, המגמה שלמה.",
			"ווליום נמוך עם מינוף עולה מגדיל את הסיכון לסקוויז לונגים.",
		),
	},
	8: {
		Name:                 "זחילה למעלה - הורדת מינוף",
		MarketInterpretation: "המחיר עולה לאט עם זרימת פקודות ניטרלית בזמן שה-Open Interest יורד. פוזיציות נסגרות בשני הצדדים.",
		SmartMoney:           "הכסף החכם מקטין סיכון ומחכה להזדמנות ברורה יותר.",
		Retail:               "הסוחרים הקטנים מאבדים עניין כשהתנודתיות דועכת.",
		Recommendation:       "אין יתרון ברור. הקטן גודל וחכה שה-Open Interest וזרימת הפקודות יבחרו כיוון.",
		VolumeInsights: volumeInsights(
			"ווליום גבוה בזמן הורדת מינוף - פוזיציה גדולה נסגרת, צפה לתנודתיות.",
			"ווליום רגיל - זחילה שקטה, אין עדיין מה לעשות.",
			"ווליום נמוך - השוק ישן, הימנע ממסחר יתר.",
		),
	},
	9: {
		Name:                 "מגמה עולה שקטה",
		MarketInterpretation: "המחיר עולה בעדינות עם זרימת פקודות מאוזנת ו-Open Interest יציב. לתנועה חסרה השתתפות חזקה.",
		SmartMoney:           "השחקנים הגדולים רובם לא פעילים ומחזיקים פוזיציות קיימות.",
		Retail:               "הסוחרים הקטנים שוריים במתינות אך לא מתחייבים.",
		Recommendation:       "ניטרלי עד שורי קלות. החזק לונגים קיימים, אבל חכה להתרחבות בווליום או ב-Open Interest לפני הוספה.",
		VolumeInsights: volumeInsights(
			"ווליום גבוה עשוי להיות תחילתה של מגמה חזקה יותר - עקוב אחר ההמשך.",
			"ווליום רגיל - המגמה העולה האיטית עשויה להימשך.",
			"ווליום נמוך - המגמה העולה חלשה ומתהפכת בקלות.",
		),
	},
	10: {
		Name:                 "דיברגנס שורי בירידה 🛡️",
		MarketInterpretation: "המחיר יורד בזמן שפקודות השוק הן קנייה נטו וה-Open Interest עולה. קונים נכנסים באגרסיביות נגד הירידה.",
		SmartMoney:           "הכסף החכם קונה את הירידה ופותח לונגים חדשים במחירים מוזלים.",
		Retail:               "הסוחרים הקטנים בפאניקה ומוכרים לתוך החולשה.",
		Recommendation:       "חפש כניסות ללונג ברגע שהמחיר מפסיק לעשות שפלים חדשים. שים סטופ מתחת לשפל האחרון.",
		VolumeInsights: volumeInsights(
			"קנייה בווליום גבוה לתוך הירידה היא סימן היפוך חזק.",
			"ווליום רגיל - צבירה מתבצעת, תיקון למעלה סביר.",
			"ווליום נמוך - הדיברגנס חלש יותר, חכה לאישור.",
		),
	},
	11: {
		Name:                 "כניעה שנספגת",
		MarketInterpretation: "המחיר יורד כשלונגים מחוסלים וה-Open Interest נופל, אבל קוני השוק שולטים. המכירות הכפויות נספגות.",
		SmartMoney:           "השחקנים הגדולים סופגים את החיסולים וצוברים ממוכרים כפויים.",
		Retail:               "לונגים של סוחרים קטנים מחוסלים או נכנעים במחיר הגרוע ביותר.",
		Recommendation:       "ייתכן שנוצר תחתית. היכנס ללונגים בהדרגה ולא בבת אחת.",
		VolumeInsights: volumeInsights(
			"כניעה בווליום גבוה עם קנייה חזקה מסמנת לעיתים קרובות תחתית מקומית.",
			"ווליום רגיל - הניקוי מסודר, בסיס עשוי להיווצר.",
			"ווליום נמוך - הכניעה לא הושלמה, ייתכן גל ירידה נוסף.",
		),
	},
	12: {
		Name:                 "צבירה בירידה",
		MarketInterpretation: "המחיר יורד בזמן שקניות בשוק שולטות וה-Open Interest יציב. קוני ספוט סופגים את הירידה.",
		SmartMoney:           "הכסף החכם צובר ספוט במחירים נמוכים בלי מינוף.",
		Retail:               "הסוחרים הקטנים מצפים להמשך ירידה ונשארים בחוץ.",
		Recommendation:       "נטייה שורית. התחל לבנות לונגים ליד תמיכה בגודל צנוע.",
		VolumeInsights: volumeInsights(
			"צבירה בווליום גבוה תומכת בחוזקה בהיפוך.",
			"ווליום רגיל - צבירה יציבה, הסיכון למטה מוגבל.",
			"ווליום נמוך - עניין הקונים דליל, היה סבלני.",
		),
	},
	13: {
		Name:                 "מגמה דובית אמיתית 🩸",
		MarketInterpretation: "המחיר יורד, המוכרים פוגעים בביקושים באגרסיביות ופוזיציות חדשות ממשיכות להיפתח. שורטים חדשים מניעים את הירידה.",
		SmartMoney:           "השחקנים הגדולים בונים שורטים ומוסיפים בחולשה.",
		Retail:               "הסוחרים הקטנים ממשיכים לקנות את הירידה ונלכדים.",
		Recommendation:       "העדף שורטים בעליות להתנגדות. אל תנסה לתפוס את התחתית.",
		VolumeInsights: volumeInsights(
			"ווליום גבוה מאשר את המגמה היורדת. מכירות חזקות תומכות בהמשך.",
			"ווליום רגיל - המגמה היורדת מסודרת וצפויה להימשך.",
			"ווליום נמוך - המכירות אולי מאבדות מומנטום, עקוב אחר תיקון.",
		),
	},
	14: {
		Name:                 "מפל חיסולי לונגים 💥",
		MarketInterpretation: "המחיר צונח עם מכירות אגרסיביות בזמן שה-Open Interest קורס. לונגים ממונפים מחוסלים בשרשרת.",
		SmartMoney:           "הכסף החכם מחכה שהמפל ימצה את עצמו לפני שהוא קונה.",
		Retail:               "לונגים של סוחרים קטנים נמחקים, ושורטים מאוחרים רודפים אחרי התנועה.",
		Recommendation:       "תנודתיות קיצונית. אל תפתח שורטים חדשים לתוך הניקוי, וחכה שגל החיסולים ייגמר לפני ששוקלים לונג.",
		VolumeInsights: volumeInsights(
			"מפל בווליום גבוה - הסוף אולי קרוב, חפש היפוך עם פתיל ארוך.",
			"ווליום רגיל - הפירוק נמשך, הישאר בחוץ.",
			"חיסולים בווליום נמוך - ספרי פקודות דלילים יכולים לדחוף את המחיר רחוק מהצפוי.",
		),
	},
	15: {
		Name:                 "לחץ מכירות ספוט",
		MarketInterpretation: "המחיר יורד על מכירה נטו בשוק בזמן שה-Open Interest שטוח. מחזיקים מוכרים ספוט.",
		SmartMoney:           "מחזיקים גדולים מפיצים מלאי ספוט.",
		Retail:               "הסוחרים הקטנים מנסים לתפוס את המחיר הנופל.",
		Recommendation:       "דובי. הימנע מלונגים עד שלחץ המכירות יירגע וזרימת הפקודות תהפוך לניטרלית.",
		VolumeInsights: volumeInsights(
			"מכירות ספוט בווליום גבוה - היצע כבד, המשך ירידה סביר.",
			"ווליום רגיל - ההפצה היציבה נמשכת.",
			"ווליום נמוך - המכירות דועכות, הירידה עשויה להאט.",
		),
	},
	16: {
		Name:                 "בניית שורטים",
		MarketInterpretation: "המחיר יורד עם זרימת פקודות מאוזנת בזמן שה-Open Interest עולה. שורטים נפתחים דרך פקודות לימיט.",
		SmartMoney:           "סוחרים מיודעים בונים שורט בסבלנות.",
		Retail:               "הסוחרים הקטנים מבולבלים וסוחרים לשני הכיוונים.",
		Recommendation:       "הטיה דובית, אבל שורטים צפופים עלולים לספוג סקוויז. השתמש בסטופים הדוקים בכניסות לשורט.",
		VolumeInsights: volumeInsights(
			"בניית שורטים בווליום גבוה תומכת בהמשך ירידה.",
			"ווליום רגיל - בניית שורט הדרגתית, המגמה נמשכת.",
			"ווליום נמוך עם שורטים עולים מגדיל את הסיכון לסקוויז שורטים.",
		),
	},
	17: {
		Name:                 "זחילה למטה - הורדת מינוף",
		MarketInterpretation: "המחיר יורד לאט עם זרימת פקודות ניטרלית ו-Open Interest יורד. השוק מתקרר.",
		SmartMoney:           "הכסף החכם סוגר פוזיציות ומקטין סיכון.",
		Retail:               "הסוחרים הקטנים מאבדים עניין.",
		Recommendation:       "אין יתרון ברור. חכה להזדמנות חדשה אחרי שהורדת המינוף תסתיים.",
		VolumeInsights: volumeInsights(
			"הורדת מינוף בווליום גבוה יכולה להקדים תחתית.",
			"ווליום רגיל - זחילה שקטה, אין מה לעשות.",
			"ווליום נמוך - השוק לא פעיל, הישאר בלי פוזיציה.",
		),
	},
	18: {
		Name:                 "מגמה יורדת שקטה",
		MarketInterpretation: "המחיר זוחל למטה עם זרימת פקודות מאוזנת ו-Open Interest יציב. אין ביקוש חזק שיעצור את הירידה.",
		SmartMoney:           "השחקנים הגדולים פסיביים ומחכים למחירים טובים יותר.",
		Retail:               "הסוחרים הקטנים מחזיקים פוזיציות מפסידות ומקווים להתאוששות.",
		Recommendation:       "דובי קלות. הימנע מלונגים עד שהביקוש יחזור.",
		VolumeInsights: volumeInsights(
			"ווליום גבוה עשוי לסמן תחילת תנועה חזקה יותר - עקוב איזה צד משתלט.",
			"ווליום רגיל - הדימום האיטי עשוי להימשך.",
			"ווליום נמוך - היעדר קונים שומר את המחיר תחת לחץ.",
		),
	},
	19: {
		Name:                 "קפיץ דרוך - צבירה 🌀",
		MarketInterpretation: "המחיר בדשדוש בזמן שקניות בשוק שולטות וה-Open Interest עולה. לונגים נבנים בשקט בתוך הטווח.",
		SmartMoney:           "הכסף החכם צובר לונגים לפני פריצה.",
		Retail:               "הסוחרים הקטנים משועממים מהטווח ולא שמים לב.",
		Recommendation:       "מבנה שורי. התכונן לפריצה למעלה וקנה ליד תמיכת הטווח.",
		VolumeInsights: volumeInsights(
			"צבירה בווליום גבוה בתוך הטווח - פריצה קרובה.",
			"ווליום רגיל - ההתמקמות נמשכת, היה סבלני.",
			"ווליום נמוך - המבנה צריך עוד זמן להבשיל.",
		),
	},
	20: {
		Name:                 "צבירה שקטה",
		MarketInterpretation: "המחיר שטוח בזמן שהקונים שולטים וה-Open Interest יורד. שורטים נסגרים וקונים סופגים את ההיצע.",
		SmartMoney:           "השחקנים הגדולים סופגים היצע ונותנים לשורטים לצאת.",
		Retail:               "הסוחרים הקטנים לא פעילים.",
		Recommendation:       "שורי במתינות. התמקם לכיוון מעלה עם סיכון הדוק.",
		VolumeInsights: volumeInsights(
			"ווליום גבוה - ספיגה חזקה, ייתכן שתבוא תנועה למעלה.",
			"ווליום רגיל - הצבירה יציבה.",
			"ווליום נמוך - מעט קורה, חכה.",
		),
	},
	21: {
		Name:                 "קונים מגינים על הטווח",
		MarketInterpretation: "המחיר בדשדוש עם קנייה נטו בשוק ו-Open Interest יציב. הקונים מגינים על הטווח אך אין מינוף מאחוריהם.",
		SmartMoney:           "הכסף החכם ניטרלי וסוחר בקצוות הטווח.",
		Retail:               "הסוחרים הקטנים סוחרים בטווח הלוך ושוב.",
		Recommendation:       "מסחר טווח: קנה בתמיכה ומכור בהתנגדות עד שפריצה תאושר.",
		VolumeInsights: volumeInsights(
			"ווליום גבוה - הטווח עשוי להישבר בקרוב.",
			"ווליום רגיל - הטווח נשאר שלם.",
			"ווליום נמוך - טווח צר ושקט.",
		),
	},
	22: {
		Name:                 "הפצה בתוך הטווח",
		MarketInterpretation: "המחיר בדשדוש בזמן שמכירות בשוק שולטות וה-Open Interest עולה. שורטים נבנים בתוך הטווח.",
		SmartMoney:           "הכסף החכם מפיץ ובונה שורט לפני שבירה למטה.",
		Retail:               "הסוחרים הקטנים ממשיכים לקנות בתחתית הטווח ומצפים לקפיצה.",
		Recommendation:       "מבנה דובי. התכונן לשבירה למטה ומכור ליד התנגדות הטווח.",
		VolumeInsights: volumeInsights(
			"הפצה בווליום גבוה - שבירה למטה קרובה.",
			"ווליום רגיל - ההפצה נמשכת.",
			"ווליום נמוך - המבנה צריך עוד זמן.",
		),
	},
	23: {
		Name:                 "סיכון לשבירת הטווח ⚠️",
		MarketInterpretation: "המחיר שטוח בזמן שהמוכרים שולטים וה-Open Interest יורד. לונגים יוצאים בשקט מתוך הטווח.",
		SmartMoney:           "הכסף החכם יוצא מפוזיציות לונג.",
		Retail:               "הסוחרים הקטנים נשארים עם תחתית הטווח בידיים.",
		Recommendation:       "זהירות. שבירה למטה אפשרית, הקטן חשיפה ללונגים.",
		VolumeInsights: volumeInsights(
			"יציאות בווליום גבוה - סיכון השבירה מוגבר.",
			"ווליום רגיל - הקטנה יציבה של לונגים.",
			"ווליום נמוך - חולשה ללא דחיפות.",
		),
	},
	24: {
		Name:                 "מוכרים לוחצים על הטווח",
		MarketInterpretation: "המחיר בדשדוש עם מכירה נטו בשוק ו-Open Interest יציב. המוכרים לוחצים אך אין מינוף חדש.",
		SmartMoney:           "הכסף החכם ניטרלי.",
		Retail:               "הסוחרים הקטנים דוביים קלות.",
		Recommendation:       "מסחר טווח עם הטיה דובית. מכור בהתנגדות והיזהר בתמיכה.",
		VolumeInsights: volumeInsights(
			"ווליום גבוה - המוכרים עשויים לשבור את הטווח בקרוב.",
			"ווליום רגיל - הטווח מחזיק.",
			"ווליום נמוך - טווח שקט.",
		),
	},
	25: {
		Name:                 "מלכודת מינוף בהיווצרות ⚠️",
		MarketInterpretation: "המחיר שטוח עם זרימת פקודות מאוזנת בזמן שה-Open Interest מטפס. מינוף נבנה בשני הצדדים ותנועה אלימה בדרך.",
		SmartMoney:           "הכסף החכם מחכה לסחור נגד הצד שיילכד.",
		Retail:               "הסוחרים הקטנים פותחים פוזיציות ממונפות ומהמרים על כיוון הפריצה.",
		Recommendation:       "אזהרה: צפה לסקוויז לכל כיוון. סחור בפריצה אחרי שהיא קורית, לעולם לא לפניה.",
		VolumeInsights: volumeInsights(
			"ווליום גבוה - הסקוויז קרוב מאוד.",
			"ווליום רגיל - המינוף ממשיך להיבנות.",
			"ווליום נמוך עם מינוף עולה - מבנה מסוכן מאוד.",
		),
	},
	26: {
		Name:                 "טווח מתקרר",
		MarketInterpretation: "המחיר שטוח עם זרימת פקודות מאוזנת ו-Open Interest יורד. פוזיציות נסגרות והשוק מאבד עניין.",
		SmartMoney:           "הכסף החכם ממתין מהצד.",
		Retail:               "הסוחרים הקטנים עוזבים את השוק.",
		Recommendation:       "אין עסקה. חכה שעניין חדש יופיע.",
		VolumeInsights: volumeInsights(
			"ווליום גבוה - חריג לשלב הזה, עקוב מקרוב.",
			"ווליום רגיל - ההתקררות נמשכת.",
			"ווליום נמוך - שוק מת.",
		),
	},
	27: {
		Name:                 "ריינג' מושלם ⚖️",
		MarketInterpretation: "המחיר, זרימת הפקודות וה-Open Interest כולם מאוזנים. השוק בשיווי משקל מלא.",
		SmartMoney:           "הכסף החכם מחכה לקטליזטור.",
		Retail:               "הסוחרים הקטנים משועממים.",
		Recommendation:       "סחור בקצוות הטווח בגודל קטן, או חכה לפריצה.",
		VolumeInsights: volumeInsights(
			"ווליום גבוה - שיווי המשקל אולי נשבר.",
			"ווליום רגיל - טווח יציב.",
			"ווליום נמוך - טווח שקט מאוד.",
		),
	},
}
