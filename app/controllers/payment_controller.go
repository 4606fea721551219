package controllers

import (
	"net/http"

	"github.com/trixtech/trixtech/app/services"
	"github.com/trixtech/trixtech/pkg/bind"
	"github.com/trixtech/trixtech/pkg/response"
)

// PaymentController serves POST /api/payments.
type PaymentController struct {
	payments *services.PaymentService
}

func NewPaymentController(payments *services.PaymentService) *PaymentController {
	return &PaymentController{payments: payments}
}

// Record handles POST /api/payments. Auth required, any role.
func (c *PaymentController) Record(w http.ResponseWriter, r *http.Request) {
	var in services.PaymentInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	} else if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	payment, err := c.payments.Record(in)
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.JSON(w, http.StatusCreated, payment)
}
