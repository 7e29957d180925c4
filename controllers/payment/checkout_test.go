package paymentControllers

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/daraghmehsaleh9-dot/Saleh/models"
)

func TestDeliveryDetailsRequireAllFields(t *testing.T) {
	complete := CheckoutInput{
		FullName:    "Sara Ahmed",
		Address:     "12 Palm Street",
		City:        "Dubai",
		PhoneNumber: "+971500000000",
		Email:       "sara@example.com",
	}

	details, ok := deliveryDetails(complete)
	require.True(t, ok)
	require.Equal(t, "Sara Ahmed", details.FullName)

	blankEach := []func(*CheckoutInput){
		func(in *CheckoutInput) { in.FullName = "" },
		func(in *CheckoutInput) { in.Address = "   " },
		func(in *CheckoutInput) { in.City = "" },
		func(in *CheckoutInput) { in.PhoneNumber = "" },
		func(in *CheckoutInput) { in.Email = "\t" },
	}
	for i, blank := range blankEach {
		in := complete
		blank(&in)
		_, ok := deliveryDetails(in)
		require.False(t, ok, "case %d should fail validation", i)
	}
}

func TestDeliveryDetailsAreFreeText(t *testing.T) {
	// No format validation beyond non-empty; odd phone numbers and addresses
	// pass through untouched.
	details, ok := deliveryDetails(CheckoutInput{
		FullName:    "س",
		Address:     "؟",
		City:        "x",
		PhoneNumber: "not-a-number",
		Email:       "also not an email",
	})
	require.True(t, ok)
	require.Equal(t, "not-a-number", details.PhoneNumber)
}

func TestCallbackURLsEmbedOrderID(t *testing.T) {
	t.Setenv("PUBLIC_BASE_URL", "https://shop.example/")

	success, failure := callbackURLs(42)
	require.Equal(t, "https://shop.example/payment/success?orderId=42", success)
	require.Equal(t, "https://shop.example/payment/failure?orderId=42", failure)
}

func TestCallbackURLsDefaultBase(t *testing.T) {
	t.Setenv("PUBLIC_BASE_URL", "")

	success, _ := callbackURLs(7)
	require.Equal(t, "http://localhost:8080/payment/success?orderId=7", success)
}

func TestCheckoutTotal(t *testing.T) {
	items := []models.CartItem{
		{Price: 15, Quantity: 2},
		{Price: 20, Quantity: 1},
	}
	require.Equal(t, 50.0, checkoutTotal(items))
	require.Equal(t, 0.0, checkoutTotal(nil))

	// Decimal math keeps awkward floats exact.
	require.Equal(t, 59.97, checkoutTotal([]models.CartItem{{Price: 19.99, Quantity: 3}}))
}
