package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type VehicleRequest struct {
	RegistrationPlate string `json:"registration_plate" validate:"required,min=1,max=25"`
	Brand             string `json:"brand"              validate:"required,min=1"`
	Model             string `json:"model"              validate:"required,min=1"`
	Year              int    `json:"year"               validate:"required,min=1900"`
	Version           string `json:"version"`
	Status            string `json:"status"`
	Type              string `json:"type"`
	Color             string `json:"color"`
	FuelType          string `json:"fuel_type"`

	FireExtinguisherExpirationDate *Date `json:"fire_extinguisher_expiration_date"`
	VTVExpirationDate              *Date `json:"vtv_expiration_date"`
	DocumentsExpirationDate        *Date `json:"documents_expiration_date"`
	AuthDocumentsExpirationDate    *Date `json:"auth_documents_expiration_date"`
	RutaExpirationDate             *Date `json:"ruta_expiration_date"`
	NextServiceDate                *Date `json:"next_service_date"`
	EnsuranceExpirationDate        *Date `json:"ensurance_expiration_date"`

	PolicyNumber      string `json:"policy_number"`
	PolicyURL         string `json:"policy_url"`
	EngravedParts     bool   `json:"engraved_parts"`
	EngravedPartsDate *Date  `json:"engraved_parts_date"`

	Census     string `json:"census"`
	Armor      bool   `json:"armor"`
	Telemetry  bool   `json:"telemetry"`
	Leasing    bool   `json:"leasing"`
	Hooked     bool   `json:"hooked"`
	Assistance bool   `json:"assistance"`

	EnsuranceCompany    string          `json:"ensurance_company"`
	EnsuranceName       string          `json:"ensurance_name"`
	BrokerName          string          `json:"broker_name"`
	FranchiseDeductible *int            `json:"franchise_deductible"`
	CoverageType        string          `json:"coverage_type"`
	PurchaseType        string          `json:"purchase_type"`
	Ownership           string          `json:"ownership"`
	PurchaseDate        *Date           `json:"purchase_date"`
	PurchaseValue       decimal.Decimal `json:"purchase_value"`
	VehicleValue        decimal.Decimal `json:"vehicle_value"`
	InvoiceNumber       string          `json:"invoice_number"`
	TireMeasure         string          `json:"tire_measure"`
	Fee                 float64         `json:"fee"`
	Chassis             string          `json:"chassis"`
	Engine              string          `json:"engine"`

	BranchID string `json:"branch_id" validate:"required,uuid"`
}

type UpdateVehicleRequest struct {
	RegistrationPlate *string `json:"registration_plate" validate:"omitempty,min=1,max=25"`
	Brand             *string `json:"brand"              validate:"omitempty,min=1"`
	Model             *string `json:"model"              validate:"omitempty,min=1"`
	Year              *int    `json:"year"               validate:"omitempty,min=1900"`
	Version           *string `json:"version"`
	Status            *string `json:"status"`
	Type              *string `json:"type"`
	Color             *string `json:"color"`
	FuelType          *string `json:"fuel_type"`

	FireExtinguisherExpirationDate *Date `json:"fire_extinguisher_expiration_date"`
	VTVExpirationDate              *Date `json:"vtv_expiration_date"`
	DocumentsExpirationDate        *Date `json:"documents_expiration_date"`
	AuthDocumentsExpirationDate    *Date `json:"auth_documents_expiration_date"`
	RutaExpirationDate             *Date `json:"ruta_expiration_date"`
	NextServiceDate                *Date `json:"next_service_date"`
	EnsuranceExpirationDate        *Date `json:"ensurance_expiration_date"`

	PolicyNumber      *string `json:"policy_number"`
	PolicyURL         *string `json:"policy_url"`
	EngravedParts     *bool   `json:"engraved_parts"`
	EngravedPartsDate *Date   `json:"engraved_parts_date"`

	Census     *string `json:"census"`
	Armor      *bool   `json:"armor"`
	Telemetry  *bool   `json:"telemetry"`
	Leasing    *bool   `json:"leasing"`
	Hooked     *bool   `json:"hooked"`
	Assistance *bool   `json:"assistance"`

	EnsuranceCompany    *string          `json:"ensurance_company"`
	EnsuranceName       *string          `json:"ensurance_name"`
	BrokerName          *string          `json:"broker_name"`
	FranchiseDeductible *int             `json:"franchise_deductible"`
	CoverageType        *string          `json:"coverage_type"`
	PurchaseType        *string          `json:"purchase_type"`
	Ownership           *string          `json:"ownership"`
	PurchaseDate        *Date            `json:"purchase_date"`
	PurchaseValue       *decimal.Decimal `json:"purchase_value"`
	VehicleValue        *decimal.Decimal `json:"vehicle_value"`
	InvoiceNumber       *string          `json:"invoice_number"`
	TireMeasure         *string          `json:"tire_measure"`
	Fee                 *float64         `json:"fee"`
	Chassis             *string          `json:"chassis"`
	Engine              *string          `json:"engine"`

	BranchID *string `json:"branch_id" validate:"omitempty,uuid"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type VehicleResponse struct {
	ID                string `json:"id"`
	RegistrationPlate string `json:"registration_plate"`
	Brand             string `json:"brand"`
	Model             string `json:"model"`
	Year              int    `json:"year"`
	Version           string `json:"version"`
	Status            string `json:"status"`
	Type              string `json:"type"`
	Color             string `json:"color"`
	FuelType          string `json:"fuel_type"`

	FireExtinguisherExpirationDate *Date `json:"fire_extinguisher_expiration_date"`
	VTVExpirationDate              *Date `json:"vtv_expiration_date"`
	DocumentsExpirationDate        *Date `json:"documents_expiration_date"`
	AuthDocumentsExpirationDate    *Date `json:"auth_documents_expiration_date"`
	RutaExpirationDate             *Date `json:"ruta_expiration_date"`
	NextServiceDate                *Date `json:"next_service_date"`
	EnsuranceExpirationDate        *Date `json:"ensurance_expiration_date"`

	PolicyNumber      string `json:"policy_number"`
	PolicyURL         string `json:"policy_url"`
	EngravedParts     bool   `json:"engraved_parts"`
	EngravedPartsDate *Date  `json:"engraved_parts_date"`

	PolicyFile     string `json:"policy_file"`
	IDCardFile     string `json:"id_card_file"`
	TitleFile      string `json:"title_file"`
	AuthIDCardFile string `json:"auth_id_card_file"`

	Census     string `json:"census"`
	IsActive   bool   `json:"is_active"`
	Armor      bool   `json:"armor"`
	Telemetry  bool   `json:"telemetry"`
	Leasing    bool   `json:"leasing"`
	Hooked     bool   `json:"hooked"`
	Assistance bool   `json:"assistance"`

	EnsuranceCompany    string          `json:"ensurance_company"`
	EnsuranceName       string          `json:"ensurance_name"`
	BrokerName          string          `json:"broker_name"`
	FranchiseDeductible *int            `json:"franchise_deductible"`
	CoverageType        string          `json:"coverage_type"`
	PurchaseType        string          `json:"purchase_type"`
	Ownership           string          `json:"ownership"`
	PurchaseDate        *Date           `json:"purchase_date"`
	PurchaseValue       decimal.Decimal `json:"purchase_value"`
	VehicleValue        decimal.Decimal `json:"vehicle_value"`
	InvoiceNumber       string          `json:"invoice_number"`
	TireMeasure         string          `json:"tire_measure"`
	Fee                 float64         `json:"fee"`
	Chassis             string          `json:"chassis"`
	Engine              string          `json:"engine"`

	BranchID  *string         `json:"branch_id"`
	Branch    *BranchResponse `json:"branch,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
