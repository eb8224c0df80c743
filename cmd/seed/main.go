package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/tipl/employee-monitoring/internal/config"
	"github.com/tipl/employee-monitoring/internal/domain/employee"
	"github.com/tipl/employee-monitoring/internal/domain/user"
	"github.com/tipl/employee-monitoring/internal/pkg/database"
	"github.com/tipl/employee-monitoring/internal/repository/postgresql"
)

const (
	adminEmail = "admin@tipl.local"
	adminName  = "System Admin"
	adminSAPID = "SAP-0001"
)

// Seeds the bootstrap admin account and its linked employee profile. Safe to
// run repeatedly: existing rows are reused, not duplicated.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	ctx := context.Background()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)

	password := getPassword()

	admin, err := userRepo.GetByEmail(ctx, adminEmail)
	switch {
	case err == nil:
		fmt.Printf("Admin user already exists (%s)\n", adminEmail)
	case errors.Is(err, user.ErrUserNotFound):
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal("Error hashing password: ", err)
		}

		admin, err = userRepo.Create(ctx, user.User{
			Email:        adminEmail,
			Name:         adminName,
			PasswordHash: string(hash),
			Role:         user.RoleAdmin,
		})
		if err != nil {
			log.Fatal("Error creating admin user: ", err)
		}
		fmt.Printf("Created admin user %s\n", adminEmail)
	default:
		log.Fatal("Error looking up admin user: ", err)
	}

	existing, err := employeeRepo.GetBySAPIDOrEmail(ctx, adminSAPID, adminEmail)
	if err != nil {
		log.Fatal("Error looking up admin employee profile: ", err)
	}

	if existing == nil {
		_, err = employeeRepo.Create(ctx, employee.Employee{
			SAPID:      adminSAPID,
			Name:       adminName,
			Email:      adminEmail,
			Department: "Administration",
			Position:   "Administrator",
			Role:       string(user.RoleAdmin),
			Status:     employee.StatusActive,
			UserID:     &admin.ID,
		})
		if err != nil {
			log.Fatal("Error creating admin employee profile: ", err)
		}
		fmt.Printf("Created employee profile %s\n", adminSAPID)
	} else if existing.UserID == nil {
		existing.UserID = &admin.ID
		existing.Status = employee.StatusActive
		if err := employeeRepo.Update(ctx, *existing); err != nil {
			log.Fatal("Error linking admin employee profile: ", err)
		}
		fmt.Printf("Linked employee profile %s to %s\n", adminSAPID, adminEmail)
	}

	fmt.Println("\nSeed complete:")
	fmt.Println("  Email:", adminEmail)
	fmt.Println("  Password:", password)
}

func getPassword() string {
	if v := os.Getenv("SEED_ADMIN_PASSWORD"); v != "" {
		return v
	}
	return "Admin@12345"
}
