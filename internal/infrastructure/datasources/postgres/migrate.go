package postgres

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
	"homeservice.backend/internal/domain/entities"
	"homeservice.backend/internal/infrastructure/models"
)

var autoMigrate = func(db *gorm.DB, dst ...interface{}) error {
	return db.AutoMigrate(dst...)
}

type enumType struct {
	name   string
	values []string
}

func enumTypes() []enumType {
	orderStatus := make([]string, 0, len(entities.OrderStatuses))
	for _, s := range entities.OrderStatuses {
		orderStatus = append(orderStatus, string(s))
	}
	paymentStatus := make([]string, 0, len(entities.PaymentStatuses))
	for _, s := range entities.PaymentStatuses {
		paymentStatus = append(paymentStatus, string(s))
	}
	paymentMethod := make([]string, 0, len(entities.PaymentMethods))
	for _, m := range entities.PaymentMethods {
		paymentMethod = append(paymentMethod, string(m))
	}
	return []enumType{
		{name: "order_status", values: orderStatus},
		{name: "payment_status", values: paymentStatus},
		{name: "payment_method", values: paymentMethod},
	}
}

func createEnumSQL(e enumType) string {
	quoted := make([]string, 0, len(e.values))
	for _, v := range e.values {
		quoted = append(quoted, "'"+v+"'")
	}
	return fmt.Sprintf(
		"DO $$ BEGIN CREATE TYPE %s AS ENUM (%s); EXCEPTION WHEN duplicate_object THEN NULL; END $$;",
		e.name, strings.Join(quoted, ", "),
	)
}

// EnsureEnums creates the status and method enum types if they are missing.
func EnsureEnums(db *gorm.DB) error {
	for _, e := range enumTypes() {
		if err := db.Exec(createEnumSQL(e)).Error; err != nil {
			return fmt.Errorf("failed to create enum %s: %w", e.name, err)
		}
	}
	return nil
}

// Migrate brings the schema up to date.
func Migrate(db *gorm.DB) error {
	if err := EnsureEnums(db); err != nil {
		return err
	}
	if err := autoMigrate(db, models.All()...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
