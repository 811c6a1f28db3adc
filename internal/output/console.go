package output

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/chrisdamba/dispatchlens/internal/models"
)

// RenderText prints the full report as aligned text tables, the analyst-
// facing view of an analysis run.
func RenderText(w io.Writer, report *models.Report) {
	fmt.Fprintf(w, "Order Analysis %s to %s\n\n", report.StartDate, report.EndDate)

	fmt.Fprintln(w, "Order Summary")
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Total Orders\t%d\n", report.Overall.TotalOrders)
	fmt.Fprintf(tw, "Same Day Orders\t%d\n", report.Overall.SameDayOrders)
	fmt.Fprintf(tw, "Next Day Orders\t%d\n", report.Overall.NextDayOrders)
	fmt.Fprintf(tw, "Same Day %%\t%.2f%%\n", report.Overall.SameDayPct)
	fmt.Fprintf(tw, "Next Day %%\t%.2f%%\n", report.Overall.NextDayPct)
	tw.Flush()

	fmt.Fprintln(w, "\nDelivery Performance")
	tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Delivery Frequency\tNumber of Orders\tAttempted\tDelivered\tUn-attempted\tAttempted %\tDelivered %\tUn-Attempted %")
	for _, row := range report.DeliverySummary {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%.1f%%\t%.1f%%\t%.1f%%\n",
			row.Frequency, row.Orders, row.Attempted, row.Delivered, row.Unattempted,
			row.AttemptedPct, row.DeliveredPct, row.UnattemptedPct)
	}
	tw.Flush()

	renderBreakdown(w, "Hub Wise Performance (Same Day)", "Hub Name", "Same Day Orders", report.HubSameDay)
	renderBreakdown(w, "Hub Wise Performance (Next Day)", "Hub Name", "Next Day Orders", report.HubNextDay)
	renderBreakdown(w, "Customer Wise Performance (Same Day)", "Customer Name", "Same Day Orders", report.CustomerSameDay)
	renderBreakdown(w, "Customer Wise Performance (Next Day)", "Customer Name", "Next Day Orders", report.CustomerNextDay)
}

func renderBreakdown(w io.Writer, title, nameHeader, ordersHeader string, rows []models.BreakdownRow) {
	fmt.Fprintf(w, "\n%s\n", title)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\tAttempted\tDelivered\tAttempted %%\tDelivered %%\n", nameHeader, ordersHeader)
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%.1f%%\t%.1f%%\n",
			row.Name, row.Orders, row.Attempted, row.Delivered,
			row.AttemptedPct, row.DeliveredPct)
	}
	tw.Flush()
}
