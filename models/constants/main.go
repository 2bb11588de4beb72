package constants

/*
	Defines a set of base level
	constants and enums to be used
	throughout DNA-Insight and its
	associated services.
*/
type Zygosity int
type Vendor string
type ParseTier string
type RiskCategory string
type Condition string
