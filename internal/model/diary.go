package model

// FlexibleScheduleSentinel is the check-in code Woffu assigns to a
// flexible-schedule day that has not been clocked yet.
const FlexibleScheduleSentinel = "_FlexibleSchedule"

// DiaryEntry is one calendar day's attendance record for a user, as returned
// by the monthly diary summary endpoint. The classification fields are
// pointers so that a field missing from the payload is distinguishable from
// an empty or false value.
type DiaryEntry struct {
	Date      string  `json:"date"`
	In        *string `json:"in"`
	Out       *string `json:"out"`
	IsHoliday *bool   `json:"isHoliday"`
	IsWeekend *bool   `json:"isWeekend"`
	DiaryID   int64   `json:"diaryId"`
}

// HasClassification reports whether all four classification fields were
// present in the payload. Entries missing any of them are never actionable.
func (d DiaryEntry) HasClassification() bool {
	return d.In != nil && d.Out != nil && d.IsHoliday != nil && d.IsWeekend != nil
}

// User is a company user as returned by the users endpoint.
type User struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}
