package tooltip

import "github.com/WJZ-P/CommitCraft/pkg/render/iso/material"

// TierInfo is the presentation of one rarity tier.
type TierInfo struct {
	Name   string
	Color  string
	Flavor string
}

var tiers = [...]TierInfo{
	{"Bedrock", "#3b3b3b", "Nothing mined"},
	{"Dirt", "#866043", "Dirt · a humble start"},
	{"Wood", "#a0824b", "Wood · first tools"},
	{"Stone", "#9a9a9a", "Stone · getting sturdy"},
	{"Coal", "#4a4a4a", "Coal · fuel for the forge"},
	{"Copper", "#e0803c", "Copper · oxidizing nicely"},
	{"Iron", "#d8d8d8", "Iron · full armor set"},
	{"Lapis", "#3458b8", "Lapis · enchanting time"},
	{"Gold", "#f5d84b", "Gold · a shiny streak"},
	{"Redstone", "#ff3b30", "Redstone · fully wired"},
	{"Diamond", "#5decf5", "Diamond · a rare find"},
	{"Netherite", "#8a6e7f", "Netherite · legendary grind"},
}

// TierInfoOf returns the presentation of t. Out-of-range tiers clamp.
func TierInfoOf(t material.Tier) TierInfo {
	return tiers[max(0, min(int(t), int(material.MaxTier)))]
}
