package model

// PaymentMethod identifies one of the supported manual payment rails.
type PaymentMethod string

const (
	PaymentVodafoneCash PaymentMethod = "vodafone_cash"
	PaymentInstapay     PaymentMethod = "instapay"
	PaymentTelda        PaymentMethod = "telda"
)

// Valid reports whether the method is one of the supported rails.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentVodafoneCash, PaymentInstapay, PaymentTelda:
		return true
	}
	return false
}

// PaymentChannel is the checkout-facing description of a payment rail.
type PaymentChannel struct {
	Method       PaymentMethod
	Label        string
	Number       string
	Instructions string
}

// PaymentChannels builds the catalog shown at checkout from the configured
// destination numbers.
func PaymentChannels(vodafone, instapay, telda string) []PaymentChannel {
	return []PaymentChannel{
		{
			Method:       PaymentVodafoneCash,
			Label:        "Vodafone Cash",
			Number:       vodafone,
			Instructions: "Send the amount via Vodafone Cash, then upload a screenshot of the transfer confirmation.",
		},
		{
			Method:       PaymentInstapay,
			Label:        "InstaPay",
			Number:       instapay,
			Instructions: "Transfer via InstaPay to the number above and upload the receipt screenshot.",
		},
		{
			Method:       PaymentTelda,
			Label:        "Telda",
			Number:       telda,
			Instructions: "Send the amount to the Telda handle above and upload a screenshot of the payment.",
		},
	}
}
