package outcome

// Status categorizes the outcome of an operation. The set is closed: one
// success tag and five failure categories distinguished by caller intent.
// There is no other failure propagation mechanism in the algebra.
type Status string

const (
	Success          Status = "SUCCESS"
	NotFound         Status = "NOT_FOUND"
	BadRequest       Status = "BAD_REQUEST"
	ConnectionFailed Status = "CONNECTION_FAILED"
	Failed           Status = "FAILED"
	Indeterminant    Status = "INDETERMINANT"
)

// StatusKey is the reserved message key under which every built Result
// records its status.
const StatusKey = "status"

func (s Status) String() string {
	return string(s)
}
