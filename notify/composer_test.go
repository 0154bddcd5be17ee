package notify

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/randevum/randevu-app/models"
	"github.com/randevum/randevu-app/utils"
)

func testAppointment() *models.Appointment {
	return &models.Appointment{
		Date:      time.Date(2026, 8, 27, 0, 0, 0, 0, utils.BusinessLocation),
		TimeLabel: "14:30",
		Service:   models.Service{Name: "Haircut"},
		Price:     450,
	}
}

func TestComposeConfirmation_PricedAppointment(t *testing.T) {
	business := &models.Business{Name: "Glow Studio", Address: "Moda Cad. 12, Kadikoy"}
	customer := &models.Customer{Name: "Ayse"}

	body := ComposeConfirmation(testAppointment(), customer, business)

	require.Contains(t, body, "Hello Ayse,")
	require.Contains(t, body, "Glow Studio")
	require.Contains(t, body, "Date: 27.08.2026")
	require.Contains(t, body, "Time: 14:30")
	require.Contains(t, body, "Price: 450.00 TL")
	require.Contains(t, body, "Address: Moda Cad. 12, Kadikoy")
	require.NotContains(t, body, "package session")
}

func TestComposeConfirmation_PackagePaid(t *testing.T) {
	a := testAppointment()
	a.PaymentMethod = models.PaymentPackage

	body := ComposeConfirmation(a, &models.Customer{Name: "Ayse"}, &models.Business{Name: "Glow Studio"})

	require.Contains(t, body, "Payment: package session")
	require.NotContains(t, body, "Price:")
	// No address configured, no address line.
	require.NotContains(t, body, "Address:")
}

func TestComposeReminder(t *testing.T) {
	body := ComposeReminder(testAppointment(), &models.Customer{Name: "Ayse"}, &models.Business{Name: "Glow Studio"})

	require.Contains(t, body, "reminder")
	require.Contains(t, body, "today at 14:30")
	require.Contains(t, body, "Service: Haircut")
}

func TestComposeStaffDigest_NumberedItinerary(t *testing.T) {
	staff := &models.User{Name: "Deniz"}
	date := time.Date(2026, 8, 27, 0, 0, 0, 0, utils.BusinessLocation)
	appointments := []models.Appointment{
		{TimeLabel: "10:00", Customer: models.Customer{Name: "Ayse Yilmaz"}, Service: models.Service{Name: "Haircut"}},
		{TimeLabel: "11:30", Customer: models.Customer{Name: "Mehmet Kaya"}, Service: models.Service{Name: "Beard Trim"}},
	}

	body := ComposeStaffDigest(staff, appointments, date)

	require.Contains(t, body, "Good morning Deniz!")
	require.Contains(t, body, "27.08.2026 (2 appointments)")
	require.Contains(t, body, "1. 10:00 - Ayse Yilmaz - Haircut")
	require.Contains(t, body, "2. 11:30 - Mehmet Kaya - Beard Trim")
	require.False(t, strings.HasSuffix(body, "\n"))
}

func TestComposeStaffDigest_SingularAppointment(t *testing.T) {
	body := ComposeStaffDigest(&models.User{Name: "Deniz"}, []models.Appointment{
		{TimeLabel: "10:00", Customer: models.Customer{Name: "Ayse"}},
	}, time.Date(2026, 8, 27, 0, 0, 0, 0, utils.BusinessLocation))

	require.Contains(t, body, "(1 appointment)")
	require.NotContains(t, body, "appointments")
}

func TestComposeOwnerDigest(t *testing.T) {
	business := &models.Business{Name: "Glow Studio"}
	summary := DailySummary{
		Served:          5,
		Cancelled:       1,
		NoShows:         2,
		CashRevenue:     1250,
		CardRevenue:     400,
		PackageSessions: 3,
	}

	body := ComposeOwnerDigest(business, summary, time.Date(2026, 8, 27, 0, 0, 0, 0, utils.BusinessLocation))

	require.Contains(t, body, "Daily summary for Glow Studio - 27.08.2026")
	require.Contains(t, body, "Appointments served: 5")
	require.Contains(t, body, "Cancelled: 1")
	require.Contains(t, body, "No-shows: 2")
	require.Contains(t, body, "Cash revenue: 1250.00 TL")
	require.Contains(t, body, "Card revenue: 400.00 TL")
	require.Contains(t, body, "Package sessions used: 3")
	require.Contains(t, body, "Total revenue: 1650.00 TL")
}

func TestSummarizeDay(t *testing.T) {
	appointments := []models.Appointment{
		{Status: models.StatusCompleted, PaymentMethod: models.PaymentCash, Price: 500},
		{Status: models.StatusCompleted, PaymentMethod: models.PaymentCash, Price: 750},
		{Status: models.StatusCompleted, PaymentMethod: models.PaymentCard, Price: 400},
		{Status: models.StatusCompleted, PaymentMethod: models.PaymentPackage, Price: 300},
		{Status: models.StatusCancelled, PaymentMethod: models.PaymentCash, Price: 900},
		{Status: models.StatusNoShow},
		{Status: models.StatusConfirmed},
	}

	summary := SummarizeDay(appointments)

	require.Equal(t, 4, summary.Served)
	require.Equal(t, 1, summary.Cancelled)
	require.Equal(t, 1, summary.NoShows)
	require.Equal(t, 1250.0, summary.CashRevenue)
	require.Equal(t, 400.0, summary.CardRevenue)
	// Package-paid visits burn a credit, they are not cash revenue.
	require.Equal(t, 1, summary.PackageSessions)
}
