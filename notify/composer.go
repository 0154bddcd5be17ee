package notify

import (
	"fmt"
	"strings"
	"time"

	"github.com/randevum/randevu-app/models"
	"github.com/randevum/randevu-app/utils"
)

// Message rendering is kept free of side effects so the texts can be
// unit-tested without a store or gateway. Dates render as DD.MM.YYYY
// everywhere a customer or staff member reads them.

func ComposeConfirmation(a *models.Appointment, customer *models.Customer, business *models.Business) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n", customer.Name)
	fmt.Fprintf(&b, "Your appointment at %s is confirmed.\n", business.Name)
	fmt.Fprintf(&b, "Date: %s\n", utils.FormatMessageDate(a.Date))
	fmt.Fprintf(&b, "Time: %s\n", a.TimeLabel)
	if a.Service.Name != "" {
		fmt.Fprintf(&b, "Service: %s\n", a.Service.Name)
	}
	if a.PaymentMethod == models.PaymentPackage {
		b.WriteString("Payment: package session\n")
	} else if a.Price > 0 {
		fmt.Fprintf(&b, "Price: %.2f TL\n", a.Price)
	}
	if business.Address != "" {
		fmt.Fprintf(&b, "Address: %s\n", business.Address)
	}
	b.WriteString("See you soon!")
	return b.String()
}

func ComposeReminder(a *models.Appointment, customer *models.Customer, business *models.Business) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n", customer.Name)
	fmt.Fprintf(&b, "This is a reminder for your appointment at %s today at %s.\n", business.Name, a.TimeLabel)
	if a.Service.Name != "" {
		fmt.Fprintf(&b, "Service: %s\n", a.Service.Name)
	}
	if business.Address != "" {
		fmt.Fprintf(&b, "Address: %s\n", business.Address)
	}
	b.WriteString("See you soon!")
	return b.String()
}

// ComposeStaffDigest renders the numbered day itinerary for one staff member.
func ComposeStaffDigest(staff *models.User, appointments []models.Appointment, date time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Good morning %s!\n", staff.Name)
	word := "appointments"
	if len(appointments) == 1 {
		word = "appointment"
	}
	fmt.Fprintf(&b, "Your schedule for %s (%d %s):\n", utils.FormatMessageDate(date), len(appointments), word)
	for i, a := range appointments {
		line := fmt.Sprintf("%d. %s - %s", i+1, a.TimeLabel, a.Customer.Name)
		if a.Service.Name != "" {
			line += " - " + a.Service.Name
		}
		b.WriteString(line + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// ComposeOwnerDigest renders the end-of-day summary for a business owner.
func ComposeOwnerDigest(business *models.Business, summary DailySummary, date time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Daily summary for %s - %s\n", business.Name, utils.FormatMessageDate(date))
	fmt.Fprintf(&b, "Appointments served: %d\n", summary.Served)
	fmt.Fprintf(&b, "Cancelled: %d\n", summary.Cancelled)
	fmt.Fprintf(&b, "No-shows: %d\n", summary.NoShows)
	fmt.Fprintf(&b, "Cash revenue: %.2f TL\n", summary.CashRevenue)
	fmt.Fprintf(&b, "Card revenue: %.2f TL\n", summary.CardRevenue)
	fmt.Fprintf(&b, "Package sessions used: %d\n", summary.PackageSessions)
	fmt.Fprintf(&b, "Total revenue: %.2f TL", summary.CashRevenue+summary.CardRevenue)
	return b.String()
}
