package reward

import "chestAnalyzer/domain"

// defaultRewardTables are the emergency tables used when the config
// service has no reward table for a tier. Values sit at the midpoint of
// each tier's configured reward range.
var defaultRewardTables = map[domain.ChestTier][]domain.RewardTableEntry{
	domain.ChestBronze: {
		{Kind: domain.RewardCoins, BaseValue: 30, DropProbability: 0.9},
		{Kind: domain.RewardFreeSpins, BaseValue: 10, DropProbability: 0.5},
		{Kind: domain.RewardBonusMultiplier, BaseValue: 1.2, DropProbability: 0.1},
	},
	domain.ChestSilver: {
		{Kind: domain.RewardCoins, BaseValue: 100, DropProbability: 0.9},
		{Kind: domain.RewardFreeSpins, BaseValue: 22, DropProbability: 0.55},
		{Kind: domain.RewardBonusMultiplier, BaseValue: 1.45, DropProbability: 0.15},
	},
	domain.ChestGold: {
		{Kind: domain.RewardCoins, BaseValue: 275, DropProbability: 0.9},
		{Kind: domain.RewardFreeSpins, BaseValue: 45, DropProbability: 0.6},
		{Kind: domain.RewardBonusMultiplier, BaseValue: 1.8, DropProbability: 0.2},
	},
	domain.ChestPlatinum: {
		{Kind: domain.RewardCoins, BaseValue: 700, DropProbability: 0.9},
		{Kind: domain.RewardFreeSpins, BaseValue: 90, DropProbability: 0.65},
		{Kind: domain.RewardBonusMultiplier, BaseValue: 2.5, DropProbability: 0.25},
	},
	domain.ChestDiamond: {
		{Kind: domain.RewardCoins, BaseValue: 3000, DropProbability: 0.9},
		{Kind: domain.RewardFreeSpins, BaseValue: 210, DropProbability: 0.7},
		{Kind: domain.RewardBonusMultiplier, BaseValue: 4.0, DropProbability: 0.3},
	},
}
