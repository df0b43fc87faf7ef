package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/jmpanasiti/rda-platform-api/internal/dto"
	"github.com/jmpanasiti/rda-platform-api/internal/infra"
	"github.com/jmpanasiti/rda-platform-api/internal/model"
	"github.com/jmpanasiti/rda-platform-api/internal/repository"
)

const licenseKind = "driver_licenses"

// DriverLicenseService keeps one live license per user: a re-upload replaces
// both the row and the stored file. Ownership (user may only touch their own
// license) is enforced at the handler via the path/token id match.
type DriverLicenseService interface {
	Upload(ctx context.Context, userID uuid.UUID, expirationDate time.Time, fileName, fileType string, content []byte) (*dto.DriverLicenseResponse, error)
	GetByID(ctx context.Context, licenseID uuid.UUID) (*dto.DriverLicenseResponse, error)
	DownloadPath(ctx context.Context, licenseID uuid.UUID) (string, error)
}

type driverLicenseService struct {
	licenses repository.DriverLicenseRepository
	files    *infra.FileStore
}

func NewDriverLicenseService(licenses repository.DriverLicenseRepository, files *infra.FileStore) DriverLicenseService {
	return &driverLicenseService{licenses: licenses, files: files}
}

func (s *driverLicenseService) Upload(ctx context.Context, userID uuid.UUID, expirationDate time.Time, fileName, fileType string, content []byte) (*dto.DriverLicenseResponse, error) {
	current, err := s.licenses.GetAll(ctx, 10, 0, repository.Filter{"user_id": userID})
	if err != nil {
		return nil, translateRepo(err, "")
	}

	if len(current) == 0 {
		license := &model.DriverLicense{
			ExpirationDate: expirationDate,
			FileName:       fileName,
			FileType:       fileType,
			UserID:         userID,
		}
		if err := s.licenses.Create(ctx, license); err != nil {
			return nil, translateRepo(err, "")
		}
		if err := s.files.Write(licenseKind, license.ID.String()+"_"+fileName, content); err != nil {
			return nil, err
		}
		return toDriverLicenseResponse(license), nil
	}

	// Replace the latest license and drop its old file.
	old := current[len(current)-1]
	oldKey := old.ID.String() + "_" + old.FileName

	updated, err := s.licenses.Update(ctx, old.ID, map[string]any{
		"expiration_date": expirationDate,
		"file_name":       fileName,
		"file_type":       fileType,
	}, nil)
	if err != nil {
		return nil, translateRepo(err, "Driver license not found.")
	}

	if err := s.files.Delete(licenseKind, oldKey); err != nil && !errors.Is(err, infra.ErrFileNotFound) {
		log.Warn().Err(err).Str("key", oldKey).Msg("could not remove replaced license file")
	}
	if err := s.files.Write(licenseKind, updated.ID.String()+"_"+fileName, content); err != nil {
		return nil, err
	}
	return toDriverLicenseResponse(updated), nil
}

func (s *driverLicenseService) GetByID(ctx context.Context, licenseID uuid.UUID) (*dto.DriverLicenseResponse, error) {
	license, err := s.licenses.GetByID(ctx, licenseID, nil)
	if err != nil {
		return nil, translateRepo(err, "Driver license not found.")
	}
	return toDriverLicenseResponse(license), nil
}

func (s *driverLicenseService) DownloadPath(ctx context.Context, licenseID uuid.UUID) (string, error) {
	license, err := s.licenses.GetByID(ctx, licenseID, nil)
	if err != nil {
		return "", translateRepo(err, "Driver license not found.")
	}
	return s.files.Path(licenseKind, license.ID.String()+"_"+license.FileName), nil
}
