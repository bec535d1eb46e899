package repository

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestBuildJobWhere_Empty(t *testing.T) {
	where, args := buildJobWhere(JobListFilter{})
	if where != "" {
		t.Fatalf("expected no where clause, got %q", where)
	}
	if len(args) != 0 {
		t.Fatalf("expected no args, got %v", args)
	}
}

func TestBuildJobWhere_AllFilters(t *testing.T) {
	remote := false
	where, args := buildJobWhere(JobListFilter{
		Status:     JobStatusActive,
		Type:       "FULL_TIME",
		Location:   "Dubai",
		Department: "Engineering",
		Remote:     &remote,
	})

	want := " WHERE status = $1 AND type = $2 AND (location ILIKE $3 OR is_remote = TRUE) AND department ILIKE $4 AND is_remote = $5"
	if where != want {
		t.Fatalf("unexpected where clause:\n got %q\nwant %q", where, want)
	}
	if len(args) != 5 {
		t.Fatalf("expected 5 args, got %d", len(args))
	}
	if args[2] != "%Dubai%" {
		t.Fatalf("expected wrapped location pattern, got %v", args[2])
	}
	if args[4] != false {
		t.Fatalf("expected remote=false arg, got %v", args[4])
	}
}

func TestBuildApplicationWhere(t *testing.T) {
	jobID := uuid.New()

	where, args := buildApplicationWhere(&jobID, ApplicationStatusPending)
	want := " WHERE a.job_id = $1 AND a.status = $2"
	if where != want {
		t.Fatalf("unexpected where clause: %q", where)
	}
	if len(args) != 2 {
		t.Fatalf("expected 2 args, got %d", len(args))
	}

	where, args = buildApplicationWhere(nil, "")
	if where != "" || len(args) != 0 {
		t.Fatalf("expected empty clause, got %q %v", where, args)
	}
}

func TestUniqueViolation(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "job_applications_job_id_email_key"}
	if !uniqueViolation(dup) {
		t.Fatalf("expected 23505 to read as unique violation")
	}
	if uniqueViolation(&pgconn.PgError{Code: "23503"}) {
		t.Fatalf("foreign key violation must not read as duplicate")
	}
	if uniqueViolation(errors.New("plain error")) {
		t.Fatalf("plain error must not read as duplicate")
	}
}
