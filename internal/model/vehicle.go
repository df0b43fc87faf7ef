package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Vehicle carries the fleet unit identity plus the compliance/insurance
// paperwork the back office tracks. The *_File columns hold the uploaded
// filename only; the bytes live in the blob store keyed "{vehicle_id}_{name}".
type Vehicle struct {
	Base
	RegistrationPlate string `gorm:"size:25;uniqueIndex"`
	Brand             string `gorm:"not null"`
	Model             string `gorm:"not null"`
	Year              int    `gorm:"not null"`
	Version           string `gorm:"size:30;default:''"`
	Status            string `gorm:"not null;default:''"`
	Type              string `gorm:"default:''"`
	Color             string `gorm:"default:''"`
	FuelType          string `gorm:"size:20"`

	FireExtinguisherExpirationDate *time.Time `gorm:"type:date"`
	VTVExpirationDate              *time.Time `gorm:"type:date"`
	DocumentsExpirationDate        *time.Time `gorm:"type:date"`
	AuthDocumentsExpirationDate    *time.Time `gorm:"type:date"`
	RutaExpirationDate             *time.Time `gorm:"type:date"`
	NextServiceDate                *time.Time `gorm:"type:date"`
	EnsuranceExpirationDate        *time.Time `gorm:"type:date"`

	PolicyNumber      string `gorm:"default:''"`
	EngravedParts     bool   `gorm:"default:false"`
	EngravedPartsDate *time.Time

	PolicyFile     string `gorm:"default:''"`
	IDCardFile     string `gorm:"default:''"`
	TitleFile      string `gorm:"default:''"`
	AuthIDCardFile string `gorm:"default:''"`

	Census     string `gorm:"size:30;default:''"`
	IsActive   bool   `gorm:"default:true"`
	Armor      bool   `gorm:"default:false"`
	Telemetry  bool   `gorm:"default:false"`
	Leasing    bool   `gorm:"default:false"`
	Hooked     bool   `gorm:"default:false"`
	Assistance bool   `gorm:"default:false"`

	EnsuranceCompany    string          `gorm:"default:''"`
	FranchiseDeductible *int
	PolicyURL           string          `gorm:"default:''"`
	CoverageType        string          `gorm:"size:30;default:''"`
	PurchaseType        string          `gorm:"size:30;default:''"`
	Ownership           string          `gorm:"size:30;default:''"`
	PurchaseDate        *time.Time      `gorm:"type:date"`
	PurchaseValue       decimal.Decimal `gorm:"type:decimal(10,2)"`
	VehicleValue        decimal.Decimal `gorm:"type:decimal(10,2)"`
	InvoiceNumber       string          `gorm:"default:''"`
	BrokerName          string          `gorm:"default:''"`
	EnsuranceName       string          `gorm:"default:''"`
	TireMeasure         string          `gorm:"default:''"`
	Fee                 float64         `gorm:"not null;default:0"`
	Chassis             string          `gorm:"size:30;not null;default:''"`
	Engine              string          `gorm:"size:30;default:''"`

	BranchID *uuid.UUID `gorm:"type:uuid;index"`

	Branch *Branch `gorm:"foreignKey:BranchID"`
}

func (Vehicle) TableName() string { return "vehicles" }
