package handler

const oopsErr = "Oops! Something went wrong. Please try again later."

// AuthNotice deliberately covers both unknown-user and wrong-password so a
// caller cannot probe which usernames exist.
const AuthNotice = "Invalid username or password"

type loginView struct {
	Notice   string
	Error    string
	Username string
}

type dashboardView struct {
	Notice   string
	Username string
}

type membersView struct {
	Notice  string
	Members []memberRow
}

type memberRow struct {
	ID    uint
	Name  string
	Email string
	Phone string
}

type memberFormView struct {
	Notice  string
	Error   string
	Name    string
	Email   string
	Phone   string
	Address string
}

type attendanceFormView struct {
	Notice   string
	Error    string
	MemberID string
	Date     string
}
