package handlers

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
)

func TestIsDuplicateKeyError(t *testing.T) {
	dup := &mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'a@example.com' for key 'users.email'"}

	if !isDuplicateKeyError(dup) {
		t.Fatal("expected 1062 to be reported as duplicate key")
	}
	if !isDuplicateKeyError(fmt.Errorf("create user: %w", dup)) {
		t.Fatal("expected wrapped 1062 to be reported as duplicate key")
	}
	if isDuplicateKeyError(&mysql.MySQLError{Number: 1452}) {
		t.Fatal("1452 is not a duplicate key error")
	}
	if isDuplicateKeyError(errors.New("plain error")) {
		t.Fatal("non-mysql error must not match")
	}
	if isDuplicateKeyError(nil) {
		t.Fatal("nil must not match")
	}
}

func TestIsForeignKeyConstraintError(t *testing.T) {
	fk := &mysql.MySQLError{Number: 1452}

	if !isForeignKeyConstraintError(fk) {
		t.Fatal("expected 1452 to be reported as FK violation")
	}
	if !isForeignKeyConstraintError(fmt.Errorf("insert booking: %w", fk)) {
		t.Fatal("expected wrapped 1452 to be reported as FK violation")
	}
	if isForeignKeyConstraintError(&mysql.MySQLError{Number: 1062}) {
		t.Fatal("1062 is not an FK violation")
	}
}
