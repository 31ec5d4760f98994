package db

import (
	"errors"
	"net"
	"strings"
	"syscall"

	"github.com/lib/pq"
)

// FailureKind classifies a store failure for operators
type FailureKind string

const (
	FailureTableMissing      FailureKind = "table_missing"
	FailureConnectionRefused FailureKind = "connection_refused"
	FailureUnknown           FailureKind = "unknown"
)

// Diagnosis is a classified store failure with a human hint
type Diagnosis struct {
	Kind FailureKind
	Hint string
}

const (
	undefinedTable = "42P01"
	undefinedFunc  = "42883"
)

// Diagnose inspects err and tells a missing schema apart from an unreachable database
func Diagnose(err error) Diagnosis {
	if err == nil {
		return Diagnosis{Kind: FailureUnknown}
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		if pqErr.Code == undefinedTable || pqErr.Code == undefinedFunc {
			return tableMissing()
		}
	}

	if errors.Is(err, syscall.ECONNREFUSED) {
		return connectionRefused()
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return connectionRefused()
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return connectionRefused()
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "relation") && strings.Contains(msg, "does not exist"):
		return tableMissing()
	case strings.Contains(msg, "connection refused"), strings.Contains(msg, "no such host"):
		return connectionRefused()
	}

	return Diagnosis{Kind: FailureUnknown}
}

func tableMissing() Diagnosis {
	return Diagnosis{
		Kind: FailureTableMissing,
		Hint: "Database tables do not exist. Run the migrations (tcgctl migrate) to create them.",
	}
}

func connectionRefused() Diagnosis {
	return Diagnosis{
		Kind: FailureConnectionRefused,
		Hint: "Cannot connect to database. Check DB_CONNECTION_STRING and that the server is running.",
	}
}
