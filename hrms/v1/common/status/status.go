package status

type AttendanceStatus string

const (
	Present AttendanceStatus = "Present"
	Absent  AttendanceStatus = "Absent"
)

func (s AttendanceStatus) Valid() bool {
	return s == Present || s == Absent
}

// Parse accepts the exact wire spelling only.
func Parse(s string) (AttendanceStatus, bool) {
	st := AttendanceStatus(s)
	return st, st.Valid()
}
