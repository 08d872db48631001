package domain

import "time"

// UsernameAll is the sentinel a caller passes to report across every user.
const UsernameAll = "All"

// ReportCriteria is the caller-facing filter input for one report run.
// Username is resolved to a stable user ID before the store is queried;
// CustomFrom/CustomTo are local civil datetimes in the report zone and are
// only consulted when Period is PeriodCustom.
type ReportCriteria struct {
	Period     QuickPeriod
	CustomFrom *time.Time
	CustomTo   *time.Time

	// The DateOnly flags mark a custom endpoint that carried a bare date;
	// the resolver substitutes the day boundary for the missing time of day.
	CustomFromDateOnly bool
	CustomToDateOnly   bool

	// Username filters to one account by display name ("" or "All" means
	// every user). UserID, when set, pins the run to that account and takes
	// precedence; non-admin callers are pinned to themselves.
	Username string
	UserID   string

	ServiceID   string
	PaymentType *PaymentType
}

// FilterAllUsers reports whether the criteria span every account.
func (c ReportCriteria) FilterAllUsers() bool {
	return c.UserID == "" && (c.Username == "" || c.Username == UsernameAll)
}
