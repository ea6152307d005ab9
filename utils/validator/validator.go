package validatorx

import (
	"sync"

	gpvalidator "github.com/go-playground/validator/v10"

	"github.com/adityapras/wms/constant"
)

var (
	v   *gpvalidator.Validate
	mut sync.Mutex
)

// Init initializes the validator singleton (idempotent) and registers the
// domain enum validations used by request structs.
func Init() {
	mut.Lock()
	defer mut.Unlock()
	if v != nil {
		return
	}
	v = gpvalidator.New()

	_ = v.RegisterValidation("stock_category", func(fl gpvalidator.FieldLevel) bool {
		return constant.StockCategory(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("allocation_strategy", func(fl gpvalidator.FieldLevel) bool {
		return constant.AllocationStrategy(fl.Field().String()).Valid()
	})
}

// ValidateStruct validates a struct using go-playground/validator
func ValidateStruct(s interface{}) error {
	if v == nil {
		Init()
	}
	return v.Struct(s)
}
