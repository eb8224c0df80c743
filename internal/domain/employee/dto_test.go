package employee

import (
	"testing"

	"github.com/tipl/employee-monitoring/internal/pkg/validator"
)

func validCreateRequest() CreateEmployeeRequest {
	return CreateEmployeeRequest{
		SAPID:      "SAP-0042",
		Name:       "Priya Nair",
		Email:      "priya.nair@example.com",
		Department: "Engineering",
		Position:   "Developer",
	}
}

func TestCreateEmployeeRequestValidate(t *testing.T) {
	req := validCreateRequest()
	if err := req.Validate(); err != nil {
		t.Fatalf("valid request failed validation: %v", err)
	}
	if req.Role != "EMPLOYEE" {
		t.Errorf("Role defaulted to %q, want EMPLOYEE", req.Role)
	}
}

func TestCreateEmployeeRequestRejections(t *testing.T) {
	cases := []struct {
		name      string
		mutate    func(*CreateEmployeeRequest)
		wantField string
	}{
		{"bad sap id", func(r *CreateEmployeeRequest) { r.SAPID = "EMP-0042" }, "sap_id"},
		{"short sap id", func(r *CreateEmployeeRequest) { r.SAPID = "SAP-42" }, "sap_id"},
		{"bad email", func(r *CreateEmployeeRequest) { r.Email = "not-an-email" }, "email"},
		{"missing department", func(r *CreateEmployeeRequest) { r.Department = "" }, "department"},
		{"unknown role", func(r *CreateEmployeeRequest) { r.Role = "OWNER" }, "role"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := validCreateRequest()
			c.mutate(&req)

			err := req.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			errs, ok := err.(validator.ValidationErrors)
			if !ok {
				t.Fatalf("error type = %T, want ValidationErrors", err)
			}
			if _, found := errs.ToMap()[c.wantField]; !found {
				t.Errorf("expected error on field %q, got %v", c.wantField, errs.ToMap())
			}
		})
	}
}

func TestUpdateEmployeeRequestValidate(t *testing.T) {
	name := "New Name"
	req := UpdateEmployeeRequest{ID: "123e4567-e89b-12d3-a456-426614174000", Name: &name}
	if err := req.Validate(); err != nil {
		t.Errorf("valid partial update failed validation: %v", err)
	}

	badStatus := "RETIRED"
	req2 := UpdateEmployeeRequest{ID: req.ID, Status: &badStatus}
	if err := req2.Validate(); err == nil {
		t.Error("expected validation error for unknown status")
	}

	empty := ""
	req3 := UpdateEmployeeRequest{ID: req.ID, Name: &empty}
	if err := req3.Validate(); err == nil {
		t.Error("expected validation error for explicitly empty name")
	}
}
