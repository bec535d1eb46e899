package validation

// Input schemas for every writable resource. Each Validate* helper applies
// the schema defaults first, so a successful return always leaves a fully
// populated value behind. Validation performs no I/O; referential checks
// (does the job exist, is the email taken) belong to the usecases.

type JobInput struct {
	Title        string   `json:"title" validate:"required,max=200"`
	Description  string   `json:"description" validate:"required,min=10,max=5000"`
	Requirements []string `json:"requirements" validate:"min=1,max=20,dive,required"`
	Location     *string  `json:"location" validate:"omitempty,max=100"`
	Type         string   `json:"type" validate:"required,oneof=FULL_TIME PART_TIME CONTRACT INTERNSHIP FREELANCE"`
	Status       string   `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE CLOSED DRAFT"`
	SalaryMin    *int     `json:"salaryMin" validate:"omitempty,gte=0"`
	SalaryMax    *int     `json:"salaryMax" validate:"omitempty,gte=0"`
	Currency     string   `json:"currency" validate:"omitempty,len=3"`
	Experience   *string  `json:"experience" validate:"omitempty,max=100"`
	Department   *string  `json:"department" validate:"omitempty,max=100"`
	IsRemote     bool     `json:"isRemote"`
	Benefits     []string `json:"benefits" validate:"max=20,dive,required"`
	Skills       []string `json:"skills" validate:"max=30,dive,required"`
}

func Job(in *JobInput) error {
	if in.Status == "" {
		in.Status = "ACTIVE"
	}
	if in.Currency == "" {
		in.Currency = "USD"
	}
	if in.Benefits == nil {
		in.Benefits = []string{}
	}
	if in.Skills == nil {
		in.Skills = []string{}
	}
	return check(in)
}

type JobApplicationInput struct {
	JobID       string  `json:"jobId" validate:"required,uuid"`
	FirstName   string  `json:"firstName" validate:"required,min=2,max=50"`
	LastName    string  `json:"lastName" validate:"required,min=2,max=50"`
	Email       string  `json:"email" validate:"required,email,max=100"`
	Phone       *string `json:"phone" validate:"omitempty,intlphone"`
	Resume      *string `json:"resume" validate:"omitempty,url"`
	Portfolio   *string `json:"portfolio" validate:"omitempty,url"`
	Linkedin    *string `json:"linkedin" validate:"omitempty,url"`
	Github      *string `json:"github" validate:"omitempty,url"`
	Website     *string `json:"website" validate:"omitempty,url"`
	CoverLetter *string `json:"coverLetter" validate:"omitempty,max=2000"`
	Experience  *string `json:"experience" validate:"omitempty,max=1000"`
}

func JobApplication(in *JobApplicationInput) error {
	return check(in)
}

type ContactInput struct {
	Name    string  `json:"name" validate:"required,min=2,max=100"`
	Email   string  `json:"email" validate:"required,email,max=100"`
	Subject string  `json:"subject" validate:"required,min=5,max=200"`
	Message string  `json:"message" validate:"required,min=10,max=2000"`
	Company *string `json:"company" validate:"omitempty,max=100"`
	Phone   *string `json:"phone" validate:"omitempty,intlphone"`
}

func Contact(in *ContactInput) error {
	return check(in)
}

type NewsletterInput struct {
	Email    string   `json:"email" validate:"required,email,max=100"`
	Name     *string  `json:"name" validate:"omitempty,min=2,max=100"`
	UserType string   `json:"userType" validate:"omitempty,oneof=learner streamer"`
	Skills   []string `json:"skills"`
	Source   *string  `json:"source" validate:"omitempty,max=100"`
}

func Newsletter(in *NewsletterInput) error {
	if in.UserType == "" {
		in.UserType = "learner"
	}
	if in.Skills == nil {
		in.Skills = []string{}
	}
	return check(in)
}

type ApplicationStatusInput struct {
	Status string  `json:"status" validate:"required,oneof=PENDING REVIEWED SHORTLISTED INTERVIEWED ACCEPTED REJECTED WITHDRAWN"`
	Notes  *string `json:"notes" validate:"omitempty,max=1000"`
}

func ApplicationStatus(in *ApplicationStatusInput) error {
	return check(in)
}
