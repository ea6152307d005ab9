package constant

// DocType distinguishes the business document kinds handled by the
// allocation engine.
type DocType int

const (
	DocTypeOutboundOrder  DocType = 100
	DocTypeTransferOrder  DocType = 110
	DocTypeInboundReceipt DocType = 120
	DocTypeAdjustment     DocType = 130
)

func (t DocType) Valid() bool {
	switch t {
	case DocTypeOutboundOrder, DocTypeTransferOrder, DocTypeInboundReceipt, DocTypeAdjustment:
		return true
	}
	return false
}

// DocStatus is derived from line counters after every allocation, pick or
// cancel event. It is never advanced through an explicit transition table.
type DocStatus int

const (
	DocStatusDraft              DocStatus = 10
	DocStatusPending            DocStatus = 20
	DocStatusPartiallyAllocated DocStatus = 30
	DocStatusFullyAllocated     DocStatus = 40
	DocStatusPartiallyPicked    DocStatus = 50
	DocStatusFullyPicked        DocStatus = 60
	DocStatusCompleted          DocStatus = 70
	DocStatusCanceled           DocStatus = 80
)

// Terminal reports whether no further mutation of the document is allowed.
func (s DocStatus) Terminal() bool {
	return s == DocStatusCompleted || s == DocStatusCanceled
}
