package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/jmpanasiti/rda-platform-api/internal/dto"
	"github.com/jmpanasiti/rda-platform-api/internal/infra"
	"github.com/jmpanasiti/rda-platform-api/internal/model"
	"github.com/jmpanasiti/rda-platform-api/internal/repository"
)

// VehicleDoc identifies one of the vehicle's attached document slots.
type VehicleDoc string

const (
	VehicleDocPolicy     VehicleDoc = "policy"
	VehicleDocIDCard     VehicleDoc = "idcard"
	VehicleDocAuthIDCard VehicleDoc = "auth_idcard"
	VehicleDocTitle      VehicleDoc = "title"
)

// storeKind is the blob-store subdirectory, column the vehicles column that
// records the current filename.
func (d VehicleDoc) storeKind() string {
	switch d {
	case VehicleDocPolicy:
		return "vehicles/policies"
	case VehicleDocIDCard:
		return "vehicles/id_cards"
	case VehicleDocAuthIDCard:
		return "vehicles/auth_id_cards"
	default:
		return "vehicles/titles"
	}
}

func (d VehicleDoc) current(v *model.Vehicle) string {
	switch d {
	case VehicleDocPolicy:
		return v.PolicyFile
	case VehicleDocIDCard:
		return v.IDCardFile
	case VehicleDocAuthIDCard:
		return v.AuthIDCardFile
	default:
		return v.TitleFile
	}
}

func (d VehicleDoc) column() string {
	switch d {
	case VehicleDocPolicy:
		return "policy_file"
	case VehicleDocIDCard:
		return "id_card_file"
	case VehicleDocAuthIDCard:
		return "auth_id_card_file"
	default:
		return "title_file"
	}
}

// ParseVehicleDoc maps the route segment onto a document slot.
func ParseVehicleDoc(s string) (VehicleDoc, bool) {
	switch VehicleDoc(s) {
	case VehicleDocPolicy, VehicleDocIDCard, VehicleDocAuthIDCard, VehicleDocTitle:
		return VehicleDoc(s), true
	}
	return "", false
}

type VehicleService interface {
	Create(ctx context.Context, req dto.VehicleRequest) (*dto.VehicleResponse, error)
	GetAll(ctx context.Context, limit, offset int) ([]dto.VehicleResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.VehicleResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateVehicleRequest) (*dto.VehicleResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Activate(ctx context.Context, id uuid.UUID) (*dto.VehicleResponse, error)
	Deactivate(ctx context.Context, id uuid.UUID) (*dto.VehicleResponse, error)

	UploadDoc(ctx context.Context, id uuid.UUID, doc VehicleDoc, fileName string, content []byte) error
	DocPath(ctx context.Context, id uuid.UUID, doc VehicleDoc, fileName string) (string, error)
	DeleteDoc(ctx context.Context, id uuid.UUID, doc VehicleDoc, fileName string) error
}

type vehicleService struct {
	vehicles repository.VehicleRepository
	files    *infra.FileStore
}

func NewVehicleService(vehicles repository.VehicleRepository, files *infra.FileStore) VehicleService {
	return &vehicleService{vehicles: vehicles, files: files}
}

func (s *vehicleService) Create(ctx context.Context, req dto.VehicleRequest) (*dto.VehicleResponse, error) {
	branchID, err := uuid.Parse(req.BranchID)
	if err != nil {
		return nil, BadRequest("Invalid branch id.")
	}

	vehicle := &model.Vehicle{
		RegistrationPlate: req.RegistrationPlate,
		Brand:             req.Brand,
		Model:             req.Model,
		Year:              req.Year,
		Version:           req.Version,
		Status:            req.Status,
		Type:              req.Type,
		Color:             req.Color,
		FuelType:          req.FuelType,

		FireExtinguisherExpirationDate: req.FireExtinguisherExpirationDate.TimePtr(),
		VTVExpirationDate:              req.VTVExpirationDate.TimePtr(),
		DocumentsExpirationDate:        req.DocumentsExpirationDate.TimePtr(),
		AuthDocumentsExpirationDate:    req.AuthDocumentsExpirationDate.TimePtr(),
		RutaExpirationDate:             req.RutaExpirationDate.TimePtr(),
		NextServiceDate:                req.NextServiceDate.TimePtr(),
		EnsuranceExpirationDate:        req.EnsuranceExpirationDate.TimePtr(),

		PolicyNumber:      req.PolicyNumber,
		PolicyURL:         req.PolicyURL,
		EngravedParts:     req.EngravedParts,
		EngravedPartsDate: req.EngravedPartsDate.TimePtr(),

		Census:     req.Census,
		IsActive:   true,
		Armor:      req.Armor,
		Telemetry:  req.Telemetry,
		Leasing:    req.Leasing,
		Hooked:     req.Hooked,
		Assistance: req.Assistance,

		EnsuranceCompany:    req.EnsuranceCompany,
		EnsuranceName:       req.EnsuranceName,
		BrokerName:          req.BrokerName,
		FranchiseDeductible: req.FranchiseDeductible,
		CoverageType:        req.CoverageType,
		PurchaseType:        req.PurchaseType,
		Ownership:           req.Ownership,
		PurchaseDate:        req.PurchaseDate.TimePtr(),
		PurchaseValue:       req.PurchaseValue,
		VehicleValue:        req.VehicleValue,
		InvoiceNumber:       req.InvoiceNumber,
		TireMeasure:         req.TireMeasure,
		Fee:                 req.Fee,
		Chassis:             req.Chassis,
		Engine:              req.Engine,

		BranchID: &branchID,
	}
	if err := s.vehicles.Create(ctx, vehicle); err != nil {
		return nil, translateRepo(err, "")
	}
	return toVehicleResponse(vehicle), nil
}

func (s *vehicleService) GetAll(ctx context.Context, limit, offset int) ([]dto.VehicleResponse, error) {
	vehicles, err := s.vehicles.GetAll(ctx, limit, offset, nil)
	if err != nil {
		return nil, translateRepo(err, "")
	}
	out := make([]dto.VehicleResponse, 0, len(vehicles))
	for i := range vehicles {
		out = append(out, *toVehicleResponse(&vehicles[i]))
	}
	return out, nil
}

func (s *vehicleService) GetByID(ctx context.Context, id uuid.UUID) (*dto.VehicleResponse, error) {
	vehicle, err := s.vehicles.GetByID(ctx, id, nil)
	if err != nil {
		return nil, translateRepo(err, "Vehicle not found.")
	}
	return toVehicleResponse(vehicle), nil
}

func (s *vehicleService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateVehicleRequest) (*dto.VehicleResponse, error) {
	fields := vehicleUpdateFields(req)
	vehicle, err := s.vehicles.Update(ctx, id, fields, nil)
	if err != nil {
		return nil, translateRepo(err, "Vehicle not found.")
	}
	return toVehicleResponse(vehicle), nil
}

func (s *vehicleService) Delete(ctx context.Context, id uuid.UUID) error {
	return translateRepo(s.vehicles.Delete(ctx, id), "Vehicle not found.")
}

func (s *vehicleService) Activate(ctx context.Context, id uuid.UUID) (*dto.VehicleResponse, error) {
	vehicle, err := s.vehicles.Activate(ctx, id)
	if err != nil {
		return nil, translateRepo(err, "Vehicle not found.")
	}
	return toVehicleResponse(vehicle), nil
}

func (s *vehicleService) Deactivate(ctx context.Context, id uuid.UUID) (*dto.VehicleResponse, error) {
	vehicle, err := s.vehicles.Deactivate(ctx, id)
	if err != nil {
		return nil, translateRepo(err, "Vehicle not found.")
	}
	return toVehicleResponse(vehicle), nil
}

// UploadDoc stores the file and records its name in the matching column. The
// blob store is not transactional with the row update; on write failure the
// column keeps its previous value.
func (s *vehicleService) UploadDoc(ctx context.Context, id uuid.UUID, doc VehicleDoc, fileName string, content []byte) error {
	if _, err := s.vehicles.GetByID(ctx, id, nil); err != nil {
		return translateRepo(err, "Vehicle not found.")
	}
	if err := s.files.Write(doc.storeKind(), id.String()+"_"+fileName, content); err != nil {
		return err
	}
	_, err := s.vehicles.Update(ctx, id, map[string]any{doc.column(): fileName}, nil)
	return translateRepo(err, "Vehicle not found.")
}

func (s *vehicleService) DocPath(ctx context.Context, id uuid.UUID, doc VehicleDoc, fileName string) (string, error) {
	vehicle, err := s.vehicles.GetByID(ctx, id, nil)
	if err != nil {
		return "", translateRepo(err, "Vehicle not found.")
	}
	if doc.current(vehicle) != fileName {
		return "", NotFound("File not found in vehicle.")
	}
	return s.files.Path(doc.storeKind(), id.String()+"_"+fileName), nil
}

func (s *vehicleService) DeleteDoc(ctx context.Context, id uuid.UUID, doc VehicleDoc, fileName string) error {
	if _, err := s.vehicles.Update(ctx, id, map[string]any{doc.column(): ""}, nil); err != nil {
		return translateRepo(err, "Vehicle not found.")
	}
	err := s.files.Delete(doc.storeKind(), id.String()+"_"+fileName)
	if errors.Is(err, infra.ErrFileNotFound) {
		return NotFound("File not found in vehicle.")
	}
	if err != nil {
		log.Error().Err(err).Str("vehicle_id", id.String()).Msg("could not remove vehicle document")
	}
	return err
}

func vehicleUpdateFields(req dto.UpdateVehicleRequest) map[string]any {
	fields := map[string]any{}
	setStr := func(col string, v *string) {
		if v != nil {
			fields[col] = *v
		}
	}
	setBool := func(col string, v *bool) {
		if v != nil {
			fields[col] = *v
		}
	}
	setDate := func(col string, v *dto.Date) {
		if v != nil {
			fields[col] = v.TimePtr()
		}
	}

	setStr("registration_plate", req.RegistrationPlate)
	setStr("brand", req.Brand)
	setStr("model", req.Model)
	if req.Year != nil {
		fields["year"] = *req.Year
	}
	setStr("version", req.Version)
	setStr("status", req.Status)
	setStr("type", req.Type)
	setStr("color", req.Color)
	setStr("fuel_type", req.FuelType)

	setDate("fire_extinguisher_expiration_date", req.FireExtinguisherExpirationDate)
	setDate("vtv_expiration_date", req.VTVExpirationDate)
	setDate("documents_expiration_date", req.DocumentsExpirationDate)
	setDate("auth_documents_expiration_date", req.AuthDocumentsExpirationDate)
	setDate("ruta_expiration_date", req.RutaExpirationDate)
	setDate("next_service_date", req.NextServiceDate)
	setDate("ensurance_expiration_date", req.EnsuranceExpirationDate)

	setStr("policy_number", req.PolicyNumber)
	setStr("policy_url", req.PolicyURL)
	setBool("engraved_parts", req.EngravedParts)
	setDate("engraved_parts_date", req.EngravedPartsDate)

	setStr("census", req.Census)
	setBool("armor", req.Armor)
	setBool("telemetry", req.Telemetry)
	setBool("leasing", req.Leasing)
	setBool("hooked", req.Hooked)
	setBool("assistance", req.Assistance)

	setStr("ensurance_company", req.EnsuranceCompany)
	setStr("ensurance_name", req.EnsuranceName)
	setStr("broker_name", req.BrokerName)
	if req.FranchiseDeductible != nil {
		fields["franchise_deductible"] = *req.FranchiseDeductible
	}
	setStr("coverage_type", req.CoverageType)
	setStr("purchase_type", req.PurchaseType)
	setStr("ownership", req.Ownership)
	setDate("purchase_date", req.PurchaseDate)
	if req.PurchaseValue != nil {
		fields["purchase_value"] = *req.PurchaseValue
	}
	if req.VehicleValue != nil {
		fields["vehicle_value"] = *req.VehicleValue
	}
	setStr("invoice_number", req.InvoiceNumber)
	setStr("tire_measure", req.TireMeasure)
	if req.Fee != nil {
		fields["fee"] = *req.Fee
	}
	setStr("chassis", req.Chassis)
	setStr("engine", req.Engine)

	if id := parseUUIDPtr(req.BranchID); id != nil {
		fields["branch_id"] = *id
	}
	return fields
}
