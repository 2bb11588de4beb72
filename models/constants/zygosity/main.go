package zygosity

import (
	"github.com/odurisile/DNA-Insight/models/constants"
)

const (
	Unknown constants.Zygosity = iota
	Homozygous
	Heterozygous
)
