package domain

import "time"

// TimestampLayout is the format session timestamps are stored in. The column
// is text so an empty string can mean "no active session".
const TimestampLayout = time.RFC3339Nano

// User is a staff account row. Token and Timestamp carry the current session:
// both empty means signed out, both set means a session was granted. They are
// always written together.
type User struct {
	ID        string
	FName     string
	LName     string
	Pin       string
	Role      string
	Token     string
	Timestamp string
	Question  string
	Answer    *string
	Active    bool
	Phone     string
	Address   string
}

// VerifyPin is the only place the primary credential is compared, so a hashed
// scheme can replace the plaintext comparison without touching the login flow.
func (u *User) VerifyPin(pin string) bool {
	return u.Pin == pin
}

// VerifyAnswer compares the supplied security answer. A NULL stored answer
// never matches; callers should check HasSecurityQuestion first.
func (u *User) VerifyAnswer(answer string) bool {
	return u.Answer != nil && *u.Answer == answer
}

// HasSecurityQuestion reports whether the question/answer fallback is usable.
func (u *User) HasSecurityQuestion() bool {
	return u.Question != "" && u.Answer != nil && *u.Answer != ""
}

// LastActivity parses the session timestamp. ok is false when the timestamp
// is empty or unreadable, which both count as "not authenticated recently".
func (u *User) LastActivity() (time.Time, bool) {
	if u.Timestamp == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(TimestampLayout, u.Timestamp)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// SignedInUser is the sanitized projection returned by the signed-in report.
type SignedInUser struct {
	ID    string `json:"id"`
	FName string `json:"f_name"`
	LName string `json:"l_name"`
	Role  string `json:"role"`
}
