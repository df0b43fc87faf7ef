package service

import (
	"strings"

	"github.com/google/uuid"

	"github.com/jmpanasiti/rda-platform-api/internal/dto"
	"github.com/jmpanasiti/rda-platform-api/internal/model"
)

// Model → response mapping, shared by every service. All of it is mechanical;
// the only rule that matters is that User.PasswordHash never crosses here.

func uuidPtrStr(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

// normalizeEmail lowercases an address before it is checked or stored, so
// casing never splits one mailbox into two accounts.
func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// parseUUIDPtr converts an optional wire id. Validation tags guarantee the
// format, so a parse failure maps to nil.
func parseUUIDPtr(s *string) *uuid.UUID {
	if s == nil || *s == "" {
		return nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil
	}
	return &id
}

// parseUUIDField is the strict variant for ids that reach the service without
// a format tag: a malformed value is reported back naming the field.
func parseUUIDField(s *string, field string) (*uuid.UUID, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil, BadRequest("Invalid " + field + ".")
	}
	return &id, nil
}

func toUserResponse(u *model.User) *dto.UserResponse {
	resp := &dto.UserResponse{
		ID:            u.ID.String(),
		Username:      u.Username,
		Email:         u.Email,
		Role:          string(u.Role),
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Phone:         u.Phone,
		Job:           u.Job,
		IsActive:      u.IsActive,
		BranchID:      uuidPtrStr(u.BranchID),
		VehicleID:     uuidPtrStr(u.VehicleID),
		DriverLicense: []dto.DriverLicenseResponse{},
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
	if u.Branch != nil {
		resp.Branch = toBranchResponse(u.Branch)
	}
	if u.Vehicle != nil {
		resp.Vehicle = toVehicleResponse(u.Vehicle)
	}
	return resp
}

func toOrganizationResponse(o *model.Organization) *dto.OrganizationResponse {
	return &dto.OrganizationResponse{
		ID:             o.ID.String(),
		Name:           o.Name,
		BusinessName:   o.BusinessName,
		SuperManagerID: o.SuperManagerID.String(),
		ContactID:      o.ContactID.String(),
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
}

func toBranchResponse(b *model.Branch) *dto.BranchResponse {
	resp := &dto.BranchResponse{
		ID:                    b.ID.String(),
		Name:                  b.Name,
		CostCenter:            b.CostCenter,
		Area:                  b.Area,
		PurchaseOrderSentDate: dto.DateFromPtr(b.PurchaseOrderSentDate),
		ManagerID:             b.ManagerID.String(),
		AgentID:               uuidPtrStr(b.AgentID),
		OrganizationID:        b.OrganizationID.String(),
		CreatedAt:             b.CreatedAt,
		UpdatedAt:             b.UpdatedAt,
	}
	if b.Organization != nil {
		resp.Organization = toOrganizationResponse(b.Organization)
	}
	return resp
}

func toVehicleResponse(v *model.Vehicle) *dto.VehicleResponse {
	resp := &dto.VehicleResponse{
		ID:                v.ID.String(),
		RegistrationPlate: v.RegistrationPlate,
		Brand:             v.Brand,
		Model:             v.Model,
		Year:              v.Year,
		Version:           v.Version,
		Status:            v.Status,
		Type:              v.Type,
		Color:             v.Color,
		FuelType:          v.FuelType,

		FireExtinguisherExpirationDate: dto.DateFromPtr(v.FireExtinguisherExpirationDate),
		VTVExpirationDate:              dto.DateFromPtr(v.VTVExpirationDate),
		DocumentsExpirationDate:        dto.DateFromPtr(v.DocumentsExpirationDate),
		AuthDocumentsExpirationDate:    dto.DateFromPtr(v.AuthDocumentsExpirationDate),
		RutaExpirationDate:             dto.DateFromPtr(v.RutaExpirationDate),
		NextServiceDate:                dto.DateFromPtr(v.NextServiceDate),
		EnsuranceExpirationDate:        dto.DateFromPtr(v.EnsuranceExpirationDate),

		PolicyNumber:      v.PolicyNumber,
		PolicyURL:         v.PolicyURL,
		EngravedParts:     v.EngravedParts,
		EngravedPartsDate: dto.DateFromPtr(v.EngravedPartsDate),

		PolicyFile:     v.PolicyFile,
		IDCardFile:     v.IDCardFile,
		TitleFile:      v.TitleFile,
		AuthIDCardFile: v.AuthIDCardFile,

		Census:     v.Census,
		IsActive:   v.IsActive,
		Armor:      v.Armor,
		Telemetry:  v.Telemetry,
		Leasing:    v.Leasing,
		Hooked:     v.Hooked,
		Assistance: v.Assistance,

		EnsuranceCompany:    v.EnsuranceCompany,
		EnsuranceName:       v.EnsuranceName,
		BrokerName:          v.BrokerName,
		FranchiseDeductible: v.FranchiseDeductible,
		CoverageType:        v.CoverageType,
		PurchaseType:        v.PurchaseType,
		Ownership:           v.Ownership,
		PurchaseDate:        dto.DateFromPtr(v.PurchaseDate),
		PurchaseValue:       v.PurchaseValue,
		VehicleValue:        v.VehicleValue,
		InvoiceNumber:       v.InvoiceNumber,
		TireMeasure:         v.TireMeasure,
		Fee:                 v.Fee,
		Chassis:             v.Chassis,
		Engine:              v.Engine,

		BranchID:  uuidPtrStr(v.BranchID),
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
	if v.Branch != nil {
		resp.Branch = toBranchResponse(v.Branch)
	}
	return resp
}

func toRequestResponse(r *model.Request) *dto.ServiceRequestResponse {
	resp := &dto.ServiceRequestResponse{
		ID:              r.ID.String(),
		Type:            string(r.Type),
		Status:          string(r.Status),
		Details:         r.Details,
		Odometer:        r.Odometer,
		AppointmentDate: dto.DateFromPtr(r.AppointmentDate),
		AlternativeDate: dto.DateFromPtr(r.AlternativeDate),
		Emergency:       r.Emergency,
		Zone:            r.Zone,
		UserValidation:  r.UserValidation,

		TireQuantity:         r.TireQuantity,
		TireBrand:            r.TireBrand,
		TireAlternativeBrand: r.TireAlternativeBrand,
		TireMeasure:          r.TireMeasure,
		TireImage:            r.TireImage,

		ApproverUserID: uuidPtrStr(r.ApproverUserID),
		UserID:         r.UserID.String(),
		VehicleID:      r.VehicleID.String(),
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
	if r.VerificationType != nil {
		s := string(*r.VerificationType)
		resp.VerificationType = &s
	}
	if r.TireReason != nil {
		s := string(*r.TireReason)
		resp.TireReason = &s
	}
	if r.User != nil {
		resp.User = toUserResponse(r.User)
	}
	if r.Vehicle != nil {
		resp.Vehicle = toVehicleResponse(r.Vehicle)
	}
	return resp
}

func toSinisterResponse(s *model.Sinister) *dto.SinisterResponse {
	files := s.FilesURLs
	if files == nil {
		files = []string{}
	}
	resp := &dto.SinisterResponse{
		ID:            s.ID.String(),
		Status:        string(s.Status),
		FilesURLs:     files,
		DetailsDamage: s.DetailsDamage,
		DetailsEvent:  s.DetailsEvent,
		Type:          string(s.Type),
		Place:         string(s.Place),
		Zone:          s.Zone,

		ApproverUserID: uuidPtrStr(s.ApproverUserID),
		VehicleID:      s.VehicleID.String(),
		UserID:         s.UserID.String(),
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
	if s.Vehicle != nil {
		resp.Vehicle = toVehicleResponse(s.Vehicle)
	}
	if s.User != nil {
		resp.User = toUserResponse(s.User)
	}
	return resp
}

func toBudgetResponse(b *model.Budget) *dto.BudgetResponse {
	return &dto.BudgetResponse{
		ID:                 b.ID.String(),
		Detail:             b.Detail,
		AllocationFile:     b.AllocationFile,
		Amount:             b.Amount,
		Status:             string(b.Status),
		Approved:           b.Approved,
		ApprovalDate:       dto.DateFromPtr(b.ApprovalDate),
		EffectiveUntilDate: dto.DateFromPtr(b.EffectiveUntilDate),
		WorkOrderID:        uuidPtrStr(b.WorkOrderID),
		VehicleID:          uuidPtrStr(b.VehicleID),
		OrganizationID:     uuidPtrStr(b.OrganizationID),
		UserID:             uuidPtrStr(b.UserID),
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

func toPurchaseOrderResponse(po *model.PurchaseOrder) *dto.PurchaseOrderResponse {
	resp := &dto.PurchaseOrderResponse{
		ID:        po.ID.String(),
		Number:    po.Number,
		Amount:    po.Amount,
		Expires:   po.Expires,
		DueDate:   dto.DateFromPtr(po.DueDate),
		FilePath:  po.FilePath,
		BranchID:  po.BranchID.String(),
		CreatedAt: po.CreatedAt,
		UpdatedAt: po.UpdatedAt,
	}
	if po.Branch != nil {
		resp.Branch = toBranchResponse(po.Branch)
	}
	return resp
}

func toWorkOrderResponse(w *model.WorkOrder) *dto.WorkOrderResponse {
	resp := &dto.WorkOrderResponse{
		ID:        w.ID.String(),
		Name:      w.Name,
		Status:    string(w.Status),
		VehicleID: w.VehicleID.String(),
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
	if w.Vehicle != nil {
		resp.Vehicle = toVehicleResponse(w.Vehicle)
	}
	return resp
}

func toNotificationResponse(n *model.Notification) *dto.NotificationResponse {
	return &dto.NotificationResponse{
		ID:        n.ID.String(),
		Title:     n.Title,
		Message:   n.Message,
		Type:      n.Type,
		IsRead:    n.IsRead,
		VehicleID: n.VehicleID.String(),
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

func toDriverLicenseResponse(l *model.DriverLicense) *dto.DriverLicenseResponse {
	return &dto.DriverLicenseResponse{
		ID:             l.ID.String(),
		ExpirationDate: dto.NewDate(l.ExpirationDate),
		FileName:       l.FileName,
		FileType:       l.FileType,
		UserID:         l.UserID.String(),
		CreatedAt:      l.CreatedAt,
		UpdatedAt:      l.UpdatedAt,
	}
}

func toMyFleetVehicleResponse(v *model.Vehicle) *dto.MyFleetVehicleResponse {
	return &dto.MyFleetVehicleResponse{
		ID:                v.ID.String(),
		RegistrationPlate: v.RegistrationPlate,
		Brand:             v.Brand,
		Model:             v.Model,
		Year:              v.Year,
		Chassis:           v.Chassis,

		FireExtinguisherExpirationDate: dto.DateFromPtr(v.FireExtinguisherExpirationDate),
		VTVExpirationDate:              dto.DateFromPtr(v.VTVExpirationDate),
		DocumentsExpirationDate:        dto.DateFromPtr(v.DocumentsExpirationDate),
		NextServiceDate:                dto.DateFromPtr(v.NextServiceDate),

		PolicyNumber:  v.PolicyNumber,
		EngravedParts: v.EngravedParts,
		PolicyFile:    v.PolicyFile,
		IDCardFile:    v.IDCardFile,
		IsActive:      v.IsActive,

		BranchID: uuidPtrStr(v.BranchID),
		Users:    []dto.UserResponse{},
	}
}

func toMyReportVehicleResponse(v *model.Vehicle) *dto.MyReportVehicleResponse {
	return &dto.MyReportVehicleResponse{
		ID:                v.ID.String(),
		RegistrationPlate: v.RegistrationPlate,
		IsActive:          v.IsActive,
		Brand:             v.Brand,
		Model:             v.Model,
		Year:              v.Year,
		Fee:               v.Fee,
		Users:             []dto.UserResponse{},
	}
}

func toMyReportUserResponse(u *model.User) *dto.MyReportUserResponse {
	return &dto.MyReportUserResponse{
		UserID:    u.ID.String(),
		IsActive:  u.IsActive,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}
