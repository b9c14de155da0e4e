package types

// Enum values mirror the database defaults: the first entry of each list is
// the column default.

var ApplicationStatuses = []string{
	"applied",
	"under_review",
	"phone_screening",
	"interview_scheduled",
	"interviewed",
	"technical_interview",
	"final_interview",
	"offer_received",
	"offer_accepted",
	"offer_declined",
	"rejected",
	"withdrawn",
}

// SuccessStatuses are the statuses counted as successful by the dashboard
// success-rate endpoint.
var SuccessStatuses = []string{"offer_received", "offer_accepted"}

var InterviewTypes = []string{"phone", "video", "in-person", "technical", "hr", "final"}

var InterviewStatuses = []string{"scheduled", "completed", "cancelled", "rescheduled"}

var EmploymentTypes = []string{"full-time", "part-time", "contract", "internship", "freelance"}

var ExperienceLevels = []string{"entry", "mid", "senior", "lead", "executive"}

func contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}

func IsValidApplicationStatus(s string) bool { return contains(ApplicationStatuses, s) }

func IsSuccessStatus(s string) bool { return contains(SuccessStatuses, s) }

func IsValidInterviewType(s string) bool { return contains(InterviewTypes, s) }

func IsValidInterviewStatus(s string) bool { return contains(InterviewStatuses, s) }
