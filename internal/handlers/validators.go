package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/svctracker/service_tracker_app/internal/core/domain"
)

// RegisterCustomValidators installs the closed-set binding validators used by
// the report and ledger DTOs. Binding failures surface as 400s before any
// service code runs.
func RegisterCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	_ = v.RegisterValidation("quickperiod", func(fl validator.FieldLevel) bool {
		return domain.ValidQuickPeriod(domain.QuickPeriod(fl.Field().String()))
	})

	_ = v.RegisterValidation("paymenttype", func(fl validator.FieldLevel) bool {
		return domain.ValidPaymentType(domain.PaymentType(fl.Field().String()))
	})
}
