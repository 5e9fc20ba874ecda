package roster

const (
	MsgLoading          = "Initializing system..."
	MsgConnectFailed    = "Unable to connect to the server."
	MsgCreateFailed     = "Failed to create employee. Please ensure ID and Email are unique."
	MsgConfirmDelete    = "Are you sure you want to delete this record?"
	MsgDeleteFailed     = "Delete operation failed."
	MsgAttendanceFailed = "Could not update attendance."
	MsgNoRecords        = "No records found."
	MsgNoHistory        = "No attendance records yet."
)

const (
	MsgImportRejected   = "Only .csv files up to 5 MB can be imported."
	MsgImportUnreadable = "Could not read the CSV file. Check the header row."
)

// MsgImportSummary takes the created and failed counts.
const MsgImportSummary = "Imported %d employees. %d rows failed."
