package constant

// StockCategory segregates otherwise-identical stock. Only UNRESTRICTED
// stock is eligible for automatic allocation.
type StockCategory string

const (
	StockCategoryUnrestricted StockCategory = "UNRESTRICTED"
	StockCategoryBlocked      StockCategory = "BLOCKED"
	StockCategoryQualityCheck StockCategory = "QUALITY_CHECK"
	StockCategoryConsignment  StockCategory = "CONSIGNMENT"
)

func (c StockCategory) Valid() bool {
	switch c {
	case StockCategoryUnrestricted, StockCategoryBlocked, StockCategoryQualityCheck, StockCategoryConsignment:
		return true
	}
	return false
}

// AllocationStrategy orders candidate quants during line allocation.
type AllocationStrategy string

const (
	// StrategyFIFO allocates oldest received stock first.
	StrategyFIFO AllocationStrategy = "FIFO"
	// StrategyFEFO allocates lotted stock with the earliest expiry first.
	StrategyFEFO AllocationStrategy = "FEFO"
)

func (s AllocationStrategy) Valid() bool {
	return s == StrategyFIFO || s == StrategyFEFO
}
