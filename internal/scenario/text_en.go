package scenario

import "github.com/vitos/crypto_scenario/internal/domain"

func volumeInsights(high, normal, low string) map[domain.Volume]string {
	return map[domain.Volume]string{
		domain.VolumeHigh:   high,
		domain.VolumeNormal: normal,
		domain.VolumeLow:    low,
	}
}

var textEN = map[int]Text{
	1: {
		Name:                 "True Bullish Trend 🚀",
		MarketInterpretation: "Price is rising, buyers are lifting offers aggressively and new positions keep opening. This is a healthy trend backed by fresh capital entering the market.",
		SmartMoney:           "Large players are building long positions and adding on strength. They are not fading the move.",
		Retail:               "Retail is starting to notice the move and chasing late, often with too much leverage.",
		Recommendation:       "Favor longs on pullbacks to support. Keep stops below the last higher low and trail them as the trend extends.",
		VolumeInsights: volumeInsights(
			"High volume confirms the trend. Strong participation supports continuation.",
			"Normal volume - the trend is healthy but not euphoric. Standard position sizing applies.",
			"Low volume is slightly concerning - the trend might weaken. Look for additional confirmation before entry.",
		),
	},
	2: {
		Name:                 "Short Squeeze ⚡",
		MarketInterpretation: "Price is rising with aggressive buying while open interest drops. Shorts are being forced to cover, which fuels the move rather than new long demand.",
		SmartMoney:           "Informed traders are letting the squeeze run and selling into the spikes to trapped shorts.",
		Retail:               "Retail shorts are getting liquidated, while late retail longs buy the vertical candles.",
		Recommendation:       "Do not chase. Squeezes end abruptly once short covering is exhausted. Take profits into strength and wait for open interest to rebuild before new longs.",
		VolumeInsights: volumeInsights(
			"High volume marks an aggressive squeeze - expect a sharp reversal once liquidations dry up.",
			"Normal volume suggests an orderly short covering that may continue a little longer.",
			"Low volume squeeze is fragile - the move can fully retrace quickly.",
		),
	},
	3: {
		Name:                 "Spot-Driven Rally 💪",
		MarketInterpretation: "Price climbs on net market buying without new leverage entering. Demand is coming mostly from spot buyers.",
		SmartMoney:           "Smart money is accumulating spot and avoiding leveraged exposure.",
		Retail:               "Retail is mostly sidelined and waiting for a pullback that may not come.",
		Recommendation:       "Constructive for longs. Spot-led rallies tend to be more durable, so buy dips with moderate leverage.",
		VolumeInsights: volumeInsights(
			"High volume shows real spot demand - strong sign of sustainable upside.",
			"Normal volume - steady accumulation, the rally can grind higher.",
			"Low volume means thin demand - the rally may stall at the next resistance.",
		),
	},
	4: {
		Name:                 "Hidden Distribution ⚠️",
		MarketInterpretation: "Price is rising but market orders are net selling while open interest grows. Sellers are absorbing the rally and new shorts are being opened into it.",
		SmartMoney:           "Large players are distributing into strength and positioning short with limit orders above the market.",
		Retail:               "Retail sees green candles and keeps buying, unaware that supply is building.",
		Recommendation:       "Avoid new longs here. Tighten stops on existing positions and watch for a lower high as the trigger for shorts.",
		VolumeInsights: volumeInsights(
			"High volume with this divergence is a strong distribution warning.",
			"Normal volume - distribution is gradual, the top may take time to form.",
			"Low volume rally with selling pressure underneath is very weak - a reversal is likely.",
		),
	},
	5: {
		Name:                 "Weak Rally – Profit Taking",
		MarketInterpretation: "Price drifts higher while market selling dominates and open interest falls. Longs are closing positions into the rise.",
		SmartMoney:           "Smart money is taking profits and reducing exposure rather than adding.",
		Retail:               "Retail interprets the higher price as strength and buys the exits of larger players.",
		Recommendation:       "Bearish bias. Take profits on longs and look for short entries on failure at resistance.",
		VolumeInsights: volumeInsights(
			"High volume profit taking signals the end of the leg up.",
			"Normal volume - steady exit of longs, momentum is fading.",
			"Low volume - the rally is running on fumes and can roll over at any time.",
		),
	},
	6: {
		Name:                 "Passive Absorption at Highs",
		MarketInterpretation: "Price edges up while aggressive sellers dominate and open interest holds flat. Limit buyers absorb the selling for now.",
		SmartMoney:           "Large participants are on both sides, absorbing supply without committing new leverage.",
		Retail:               "Retail is split and uncertain, trading the noise.",
		Recommendation:       "Wait for resolution. If the absorption holds, a breakout follows; if bids pull, expect a fast drop. Keep positions small.",
		VolumeInsights: volumeInsights(
			"High volume absorption - a decisive move is close, watch which side breaks.",
			"Normal volume - the standoff may continue for a while.",
			"Low volume - little conviction either way, stay patient.",
		),
	},
	7: {
		Name:                 "Leveraged Grind Higher 📈",
		MarketInterpretation: "Price rises with balanced order flow while open interest climbs. Longs are opening positions through limit orders.",
		SmartMoney:           "Informed traders are building positions patiently without chasing.",
		Retail:               "Retail is adding leveraged longs as confidence grows.",
		Recommendation:       "Moderately bullish. Trade with the trend but watch funding and leverage, since crowded longs can be flushed.",
		VolumeInsights: volumeInsights(
			"High volume supports the leverage build-up - continuation is likely.",
			"Normal volume - steady grind, trend remains intact.",
			"Low volume with rising leverage increases the risk of a long squeeze.",
		),
	},
	8: {
		Name:                 "Drifting Higher – Deleveraging",
		MarketInterpretation: "Price moves up slowly with neutral order flow while open interest declines. Positions are being closed on both sides.",
		SmartMoney:           "Smart money is reducing risk and waiting for a clearer setup.",
		Retail:               "Retail is losing interest as volatility fades.",
		Recommendation:       "No strong edge. Reduce size and wait for open interest and order flow to pick a direction.",
		VolumeInsights: volumeInsights(
			"High volume while deleveraging - a large position is being unwound, expect volatility.",
			"Normal volume - quiet drift, nothing actionable yet.",
			"Low volume - the market is asleep, avoid overtrading.",
		),
	},
	9: {
		Name:                 "Quiet Uptrend",
		MarketInterpretation: "Price rises gently with balanced order flow and stable open interest. The move lacks strong participation.",
		SmartMoney:           "Large players are mostly inactive, holding existing positions.",
		Retail:               "Retail is mildly bullish but not committing.",
		Recommendation:       "Neutral to slightly bullish. Hold existing longs, but wait for a volume or open interest expansion before adding.",
		VolumeInsights: volumeInsights(
			"High volume could be the start of a stronger trend - watch for follow through.",
			"Normal volume - the slow uptrend may continue.",
			"Low volume - the uptrend is weak and easily reversed.",
		),
	},
	10: {
		Name:                 "Bullish Divergence on a Dip 🛡️",
		MarketInterpretation: "Price is falling while market orders are net buying and open interest rises. Buyers are stepping in aggressively against the decline.",
		SmartMoney:           "Smart money is buying the dip and opening new longs at discounted prices.",
		Retail:               "Retail is panicking and selling into the weakness.",
		Recommendation:       "Look for long entries once price stops making new lows. Place stops below the recent low.",
		VolumeInsights: volumeInsights(
			"High volume buying into the dip is a strong reversal signal.",
			"Normal volume - accumulation is underway, a bounce is likely.",
			"Low volume - the divergence is weaker, wait for confirmation.",
		),
	},
	11: {
		Name:                 "Capitulation Absorbed",
		MarketInterpretation: "Price drops as longs are liquidated and open interest falls, yet market buyers dominate. Forced selling is being absorbed.",
		SmartMoney:           "Large players are absorbing liquidations and accumulating from forced sellers.",
		Retail:               "Retail longs are being liquidated or capitulating at the worst price.",
		Recommendation:       "A bottom may be forming. Scale into longs gradually rather than all at once.",
		VolumeInsights: volumeInsights(
			"High volume capitulation with strong buying often marks a local bottom.",
			"Normal volume - the flush is orderly, a base may form.",
			"Low volume - capitulation is incomplete, another leg down is possible.",
		),
	},
	12: {
		Name:                 "Accumulation on the Dip",
		MarketInterpretation: "Price declines while market buying dominates and open interest holds steady. Spot buyers are absorbing the decline.",
		SmartMoney:           "Smart money accumulates spot at lower prices without leverage.",
		Retail:               "Retail expects further downside and stays out.",
		Recommendation:       "Bullish lean. Start building longs near support with modest size.",
		VolumeInsights: volumeInsights(
			"High volume accumulation strongly supports a reversal.",
			"Normal volume - steady accumulation, the downside is limited.",
			"Low volume - buying interest is thin, be patient.",
		),
	},
	13: {
		Name:                 "True Bearish Trend 🩸",
		MarketInterpretation: "Price is falling, sellers are hitting bids aggressively and new positions keep opening. New shorts are driving the decline.",
		SmartMoney:           "Large players are building shorts and adding on weakness.",
		Retail:               "Retail keeps buying the dip and getting trapped.",
		Recommendation:       "Favor shorts on rallies to resistance. Do not try to catch the bottom.",
		VolumeInsights: volumeInsights(
			"High volume confirms the downtrend. Strong selling supports continuation.",
			"Normal volume - the downtrend is orderly and likely to continue.",
			"Low volume - the selling may be losing momentum, watch for a bounce.",
		),
	},
	14: {
		Name:                 "Long Liquidation Cascade 💥",
		MarketInterpretation: "Price drops sharply with aggressive selling while open interest collapses. Leveraged longs are being liquidated in a chain.",
		SmartMoney:           "Smart money waits for the cascade to exhaust before buying.",
		Retail:               "Retail longs are being wiped out, and late retail shorts chase the move.",
		Recommendation:       "Extreme volatility. Do not open new shorts into the flush, and wait for the liquidation wave to end before considering longs.",
		VolumeInsights: volumeInsights(
			"High volume cascade - the end may be near, watch for a long wick reversal.",
			"Normal volume - the unwinding is ongoing, stay out.",
			"Low volume liquidation - thin books can push price further than expected.",
		),
	},
	15: {
		Name:                 "Spot Selling Pressure",
		MarketInterpretation: "Price falls on net market selling while open interest stays flat. Holders are selling spot.",
		SmartMoney:           "Large holders are distributing spot inventory.",
		Retail:               "Retail tries to catch the falling price.",
		Recommendation:       "Bearish. Avoid longs until selling pressure eases and order flow turns neutral.",
		VolumeInsights: volumeInsights(
			"High volume spot selling - heavy supply, further downside is likely.",
			"Normal volume - steady distribution continues.",
			"Low volume - selling is fading, the decline may slow down.",
		),
	},
	16: {
		Name:                 "Short Build-Up",
		MarketInterpretation: "Price declines with balanced order flow while open interest rises. Shorts are opening through limit orders.",
		SmartMoney:           "Informed traders are positioning short patiently.",
		Retail:               "Retail is confused and trades both directions.",
		Recommendation:       "Bearish bias, but crowded shorts can squeeze. Use tight stops on short entries.",
		VolumeInsights: volumeInsights(
			"High volume short build-up supports further downside.",
			"Normal volume - gradual short positioning, trend continues.",
			"Low volume with rising shorts raises the risk of a short squeeze.",
		),
	},
	17: {
		Name:                 "Deleveraging Drift Lower",
		MarketInterpretation: "Price moves down slowly with neutral order flow and falling open interest. The market is cooling off.",
		SmartMoney:           "Smart money is closing positions and reducing risk.",
		Retail:               "Retail is losing interest.",
		Recommendation:       "No clear edge. Wait for a fresh setup after the deleveraging ends.",
		VolumeInsights: volumeInsights(
			"High volume deleveraging can precede a bottom.",
			"Normal volume - quiet drift, nothing actionable.",
			"Low volume - the market is inactive, stay flat.",
		),
	},
	18: {
		Name:                 "Quiet Downtrend",
		MarketInterpretation: "Price drifts lower with balanced order flow and stable open interest. There is no strong demand to stop the slide.",
		SmartMoney:           "Large players are passive and waiting for better prices.",
		Retail:               "Retail holds losing positions hoping for a recovery.",
		Recommendation:       "Slightly bearish. Avoid longs until demand returns.",
		VolumeInsights: volumeInsights(
			"High volume may mark the start of a stronger move - watch which side takes control.",
			"Normal volume - the slow bleed may continue.",
			"Low volume - lack of buyers keeps price under pressure.",
		),
	},
	19: {
		Name:                 "Coiled Spring – Accumulation 🌀",
		MarketInterpretation: "Price is ranging while market buying dominates and open interest rises. Longs are quietly building inside the range.",
		SmartMoney:           "Smart money accumulates longs before a breakout.",
		Retail:               "Retail is bored by the range and not paying attention.",
		Recommendation:       "Bullish setup. Prepare for an upside breakout and buy near range support.",
		VolumeInsights: volumeInsights(
			"High volume accumulation inside the range - a breakout is near.",
			"Normal volume - positioning continues, be patient.",
			"Low volume - the setup needs more time to mature.",
		),
	},
	20: {
		Name:                 "Quiet Accumulation",
		MarketInterpretation: "Price is flat while buyers dominate and open interest falls. Shorts are closing and buyers absorb supply.",
		SmartMoney:           "Large players are absorbing supply and letting shorts exit.",
		Retail:               "Retail is inactive.",
		Recommendation:       "Mildly bullish. Position for the upside with tight risk.",
		VolumeInsights: volumeInsights(
			"High volume - strong absorption, an upside move may follow.",
			"Normal volume - accumulation is steady.",
			"Low volume - little happening, wait.",
		),
	},
	21: {
		Name:                 "Buyers Defending the Range",
		MarketInterpretation: "Price is ranging with net market buying and stable open interest. Buyers defend the range but there is no leverage behind them.",
		SmartMoney:           "Smart money is neutral and trading the range edges.",
		Retail:               "Retail trades the range back and forth.",
		Recommendation:       "Range trading: buy support and sell resistance until a breakout is confirmed.",
		VolumeInsights: volumeInsights(
			"High volume - the range may break soon.",
			"Normal volume - the range remains intact.",
			"Low volume - tight, quiet range.",
		),
	},
	22: {
		Name:                 "Distribution in the Range",
		MarketInterpretation: "Price is ranging while market selling dominates and open interest rises. Shorts are building within the range.",
		SmartMoney:           "Smart money is distributing and positioning short before a breakdown.",
		Retail:               "Retail keeps buying range lows, expecting a bounce.",
		Recommendation:       "Bearish setup. Prepare for a downside break and sell near range resistance.",
		VolumeInsights: volumeInsights(
			"High volume distribution - a breakdown is near.",
			"Normal volume - distribution continues.",
			"Low volume - the setup needs more time.",
		),
	},
	23: {
		Name:                 "Range Breakdown Risk ⚠️",
		MarketInterpretation: "Price is flat while sellers dominate and open interest drops. Longs are exiting quietly inside the range.",
		SmartMoney:           "Smart money is exiting long positions.",
		Retail:               "Retail is left holding the range lows.",
		Recommendation:       "Caution. A breakdown is possible, so reduce long exposure.",
		VolumeInsights: volumeInsights(
			"High volume exits - breakdown risk is elevated.",
			"Normal volume - steady reduction of longs.",
			"Low volume - weakness without urgency.",
		),
	},
	24: {
		Name:                 "Sellers Pressing the Range",
		MarketInterpretation: "Price is ranging with net market selling and stable open interest. Sellers press but no new leverage is involved.",
		SmartMoney:           "Smart money is neutral.",
		Retail:               "Retail is slightly bearish.",
		Recommendation:       "Range trading with a bearish tilt. Sell resistance and be careful at support.",
		VolumeInsights: volumeInsights(
			"High volume - sellers may break the range soon.",
			"Normal volume - the range holds.",
			"Low volume - quiet range.",
		),
	},
	25: {
		Name:                 "Leverage Trap Forming ⚠️",
		MarketInterpretation: "Price is flat with balanced order flow while open interest climbs. Leverage is building on both sides and a violent move is coming.",
		SmartMoney:           "Smart money waits to trade against the side that gets trapped.",
		Retail:               "Retail opens leveraged positions betting on the breakout direction.",
		Recommendation:       "Warning: expect a squeeze in either direction. Trade the breakout after it happens, never before.",
		VolumeInsights: volumeInsights(
			"High volume - the squeeze is imminent.",
			"Normal volume - leverage keeps building.",
			"Low volume with rising leverage - a very dangerous setup.",
		),
	},
	26: {
		Name:                 "Range Cooling Off",
		MarketInterpretation: "Price is flat with balanced order flow and falling open interest. Positions are closing and the market is losing interest.",
		SmartMoney:           "Smart money is waiting on the sidelines.",
		Retail:               "Retail is leaving the market.",
		Recommendation:       "No trade. Wait for new interest to appear.",
		VolumeInsights: volumeInsights(
			"High volume - unusual for this phase, watch closely.",
			"Normal volume - cooling continues.",
			"Low volume - a dead market.",
		),
	},
	27: {
		Name:                 "Perfect Range ⚖️",
		MarketInterpretation: "Price, order flow and open interest are all balanced. The market is in full equilibrium.",
		SmartMoney:           "Smart money is waiting for a catalyst.",
		Retail:               "Retail is bored.",
		Recommendation:       "Trade the range edges with small size, or wait for a breakout.",
		VolumeInsights: volumeInsights(
			"High volume - equilibrium may be breaking.",
			"Normal volume - a stable range.",
			"Low volume - a very quiet range.",
		),
	},
}
