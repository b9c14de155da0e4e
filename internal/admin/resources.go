package admin

import "github.com/jobtrack-dev/jobtrack/internal/types"

var registry = []Resource{
	{
		Name:       "users",
		Title:      "name",
		Searchable: []string{"id", "name", "email", "username"},
		Fields: []Field{
			{Name: "name", Label: "Name", Type: "text", Required: true, MaxLen: 255, Sortable: true},
			{Name: "email", Label: "Email", Type: "email", Required: true, MaxLen: 255, Sortable: true},
			{Name: "username", Label: "Username", Type: "text", Required: true, MaxLen: 255, Sortable: true},
			{Name: "role", Label: "Role", Type: "select", Required: true, Options: []string{types.RoleSuperAdmin, types.RoleAdmin, types.RoleUser}},
			{Name: "is_active", Label: "Is Active", Type: "boolean", Sortable: true},
		},
	},
	{
		Name:       "companies",
		Title:      "name",
		Searchable: []string{"id", "name", "industry"},
		Fields: []Field{
			{Name: "name", Label: "Name", Type: "text", Required: true, MaxLen: 255, Sortable: true},
			{Name: "website", Label: "Website", Type: "url"},
			{Name: "email", Label: "Email", Type: "email"},
			{Name: "phone", Label: "Phone", Type: "text", MaxLen: 20},
			{Name: "address", Label: "Address", Type: "textarea"},
			{Name: "description", Label: "Description", Type: "textarea"},
			{Name: "industry", Label: "Industry", Type: "text", MaxLen: 255, Sortable: true},
			{Name: "size", Label: "Size", Type: "text", MaxLen: 50},
			{Name: "logo_url", Label: "Logo URL", Type: "url"},
		},
	},
	{
		Name:       "jobs",
		Title:      "title",
		Searchable: []string{"id", "title", "location"},
		Fields: []Field{
			{Name: "company_id", Label: "Company", Type: "number", Required: true},
			{Name: "title", Label: "Title", Type: "text", Required: true, MaxLen: 255, Sortable: true},
			{Name: "description", Label: "Description", Type: "textarea"},
			{Name: "location", Label: "Location", Type: "text", MaxLen: 255},
			{Name: "salary_min", Label: "Salary Min", Type: "number"},
			{Name: "salary_max", Label: "Salary Max", Type: "number"},
			{Name: "employment_type", Label: "Employment Type", Type: "select", Required: true, Options: types.EmploymentTypes},
			{Name: "experience_level", Label: "Experience Level", Type: "select", Required: true, Options: types.ExperienceLevels},
			{Name: "remote_option", Label: "Remote Option", Type: "boolean"},
			{Name: "job_url", Label: "Job URL", Type: "url"},
			{Name: "posted_date", Label: "Posted Date", Type: "date", Sortable: true},
			{Name: "application_deadline", Label: "Application Deadline", Type: "date"},
		},
	},
	{
		Name:       "applications",
		Title:      "id",
		Searchable: []string{"id", "status", "source"},
		Fields: []Field{
			{Name: "user_id", Label: "User", Type: "number", Required: true, ReadOnly: true},
			{Name: "company_id", Label: "Company", Type: "number", Required: true, ReadOnly: true},
			{Name: "job_id", Label: "Job", Type: "number"},
			{Name: "status", Label: "Status", Type: "select", Options: types.ApplicationStatuses, Sortable: true},
			{Name: "applied_date", Label: "Applied Date", Type: "date", Required: true, Sortable: true},
			{Name: "notes", Label: "Notes", Type: "textarea"},
			{Name: "resume_url", Label: "Resume URL", Type: "url"},
			{Name: "cover_letter_url", Label: "Cover Letter URL", Type: "url"},
			{Name: "salary_expectation", Label: "Salary Expectation", Type: "number"},
			{Name: "source", Label: "Source", Type: "text", MaxLen: 255},
		},
	},
	{
		Name:       "interviews",
		Title:      "id",
		Searchable: []string{"id", "interviewer_name"},
		Fields: []Field{
			{Name: "application_id", Label: "Application", Type: "number", Required: true, ReadOnly: true},
			{Name: "interview_date", Label: "Interview Date", Type: "date", Required: true, Sortable: true},
			{Name: "interview_time", Label: "Interview Time", Type: "time", Required: true},
			{Name: "type", Label: "Type", Type: "select", Required: true, Options: types.InterviewTypes},
			{Name: "location", Label: "Location", Type: "text", MaxLen: 255},
			{Name: "interviewer_name", Label: "Interviewer Name", Type: "text", MaxLen: 255},
			{Name: "interviewer_email", Label: "Interviewer Email", Type: "email", MaxLen: 255},
			{Name: "notes", Label: "Notes", Type: "textarea"},
			{Name: "status", Label: "Status", Type: "select", Options: types.InterviewStatuses, Sortable: true},
			{Name: "feedback", Label: "Feedback", Type: "textarea"},
		},
	},
	{
		Name:       "application_notes",
		Title:      "id",
		Searchable: []string{"id"},
		Fields: []Field{
			{Name: "application_id", Label: "Application", Type: "number", Required: true, ReadOnly: true},
			{Name: "user_id", Label: "Author", Type: "number", Required: true, ReadOnly: true},
			{Name: "note", Label: "Note", Type: "textarea", Required: true},
			{Name: "is_private", Label: "Is Private", Type: "boolean"},
		},
	},
}
