package seeder

import (
	"context"
	"fmt"

	"github.com/Dweirii/Learnify-Landing-Page/internal/database"
)

// JobsSeeder loads the sample openings the careers page ships with. It only
// runs against an empty jobs table, so re-running it is safe.
type JobsSeeder struct{}

func (JobsSeeder) Name() string { return "jobs" }

type seedJob struct {
	Title        string
	Description  string
	Requirements []string
	Location     string
	Type         string
	SalaryMin    int
	SalaryMax    int
	Experience   string
	Department   string
	IsRemote     bool
	Benefits     []string
	Skills       []string
}

func (JobsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "jobs",
		"id", "title", "description", "requirements", "location", "type", "status",
		"salary_min", "salary_max", "currency", "experience", "department", "is_remote",
		"benefits", "skills", "created_at", "updated_at"); err != nil {
		return err
	}

	var existing int
	if err := db.QueryRow(ctx, `SELECT COUNT(1) FROM jobs`).Scan(&existing); err != nil {
		return err
	}
	if existing > 0 {
		return nil
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, j := range sampleJobs {
		_, err := tx.Exec(ctx,
			`INSERT INTO jobs (id, title, description, requirements, location, type, status,
				salary_min, salary_max, currency, experience, department, is_remote, benefits, skills)
			 VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, 'ACTIVE', $6, $7, 'USD', $8, $9, $10, $11, $12)`,
			j.Title, j.Description, j.Requirements, j.Location, j.Type,
			j.SalaryMin, j.SalaryMax, j.Experience, j.Department, j.IsRemote,
			j.Benefits, j.Skills,
		)
		if err != nil {
			return fmt.Errorf("seed job %q: %w", j.Title, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

var sampleJobs = []seedJob{
	{
		Title:       "Senior Full-Stack Developer",
		Description: "We are looking for a passionate Senior Full-Stack Developer to join our team and help build the future of education technology. You will work on our core platform, building features that impact thousands of learners across the MENA region.",
		Requirements: []string{
			"5+ years of experience in full-stack development",
			"Proficiency in React, Node.js, and TypeScript",
			"Experience with PostgreSQL and Redis",
			"Knowledge of cloud platforms (AWS, Vercel)",
			"Strong problem-solving and communication skills",
			"Experience with educational technology is a plus",
		},
		Location:   "Remote",
		Type:       "FULL_TIME",
		SalaryMin:  80000,
		SalaryMax:  120000,
		Experience: "5+ years",
		Department: "Engineering",
		IsRemote:   true,
		Benefits: []string{
			"Competitive salary",
			"Health insurance",
			"Flexible working hours",
			"Professional development budget",
			"Stock options",
		},
		Skills: []string{"React", "Node.js", "TypeScript", "PostgreSQL", "AWS", "Docker"},
	},
	{
		Title:       "Product Marketing Manager",
		Description: "Join our marketing team to help grow Learnify's presence in the MENA region. You will be responsible for developing and executing marketing strategies that drive user acquisition and engagement.",
		Requirements: []string{
			"3+ years of experience in product marketing",
			"Experience in the EdTech or SaaS industry",
			"Strong analytical and communication skills",
			"Proficiency in marketing tools and platforms",
			"Understanding of the MENA market",
			"Bachelor's degree in Marketing or related field",
		},
		Location:   "Dubai, UAE",
		Type:       "FULL_TIME",
		SalaryMin:  60000,
		SalaryMax:  90000,
		Experience: "3+ years",
		Department: "Marketing",
		IsRemote:   false,
		Benefits: []string{
			"Competitive salary",
			"Health insurance",
			"Transportation allowance",
			"Professional development opportunities",
			"Team building events",
		},
		Skills: []string{"Product Marketing", "Digital Marketing", "Analytics", "Content Creation", "Market Research", "Social Media"},
	},
	{
		Title:       "Frontend Developer Intern",
		Description: "Perfect opportunity for a recent graduate or student to gain hands-on experience in modern frontend development. You will work alongside our experienced developers to build user-facing features for our platform.",
		Requirements: []string{
			"Basic knowledge of HTML, CSS, and JavaScript",
			"Familiarity with React or willingness to learn",
			"Understanding of responsive design principles",
			"Strong attention to detail",
			"Good communication skills",
			"Currently enrolled in or recently graduated from a computer science program",
		},
		Location:   "Remote",
		Type:       "INTERNSHIP",
		SalaryMin:  2000,
		SalaryMax:  3000,
		Experience: "Entry level",
		Department: "Engineering",
		IsRemote:   true,
		Benefits: []string{
			"Mentorship program",
			"Flexible schedule",
			"Certificate of completion",
			"Potential full-time offer",
			"Learning resources",
		},
		Skills: []string{"HTML", "CSS", "JavaScript", "React", "Git", "Responsive Design"},
	},
	{
		Title:       "UX/UI Designer",
		Description: "We are seeking a creative UX/UI Designer to join our design team. You will be responsible for creating intuitive and engaging user experiences that make learning accessible and enjoyable for our users.",
		Requirements: []string{
			"3+ years of experience in UX/UI design",
			"Proficiency in Figma, Sketch, or Adobe Creative Suite",
			"Experience with user research and testing",
			"Strong portfolio showcasing design skills",
			"Understanding of accessibility principles",
			"Experience with mobile and web design",
		},
		Location:   "Cairo, Egypt",
		Type:       "FULL_TIME",
		SalaryMin:  50000,
		SalaryMax:  75000,
		Experience: "3+ years",
		Department: "Design",
		IsRemote:   false,
		Benefits: []string{
			"Competitive salary",
			"Health insurance",
			"Creative workspace",
			"Design tools and resources",
			"Conference attendance",
		},
		Skills: []string{"Figma", "User Research", "Prototyping", "Accessibility", "Mobile Design", "Design Systems"},
	},
}
