package services

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/Wealthy-grace/house-Property-service/internal/dtos"
	"github.com/Wealthy-grace/house-Property-service/internal/models"
	"github.com/Wealthy-grace/house-Property-service/internal/repositories"
	"github.com/Wealthy-grace/house-Property-service/internal/utils"
)

// PropertyService owns every business rule of the listing domain: the
// create-time uniqueness checks, the existence checks on mutation, and the
// enum parsing for the type-based searches.
type PropertyService interface {
	Create(ctx context.Context, req *dtos.PropertyRequest) (*dtos.PropertyResponse, error)
	Update(ctx context.Context, id int64, req *dtos.PropertyRequest) (*dtos.PropertyResponse, error)
	UpdateStatus(ctx context.Context, id int64, rented bool) (*dtos.PropertyResponse, error)
	Delete(ctx context.Context, id int64) (*dtos.PropertyResponse, error)
	GetByID(ctx context.Context, id int64) (*dtos.PropertyResponse, error)

	SearchByLocation(ctx context.Context, location string) ([]dtos.PropertyDto, error)
	SearchByHouseType(ctx context.Context, houseType string) ([]dtos.PropertyDto, error)
	SearchBySurfaceArea(ctx context.Context, surfaceArea string) ([]dtos.PropertyDto, error)
	SearchByInterior(ctx context.Context, interior string) ([]dtos.PropertyDto, error)
	SearchByMaxRent(ctx context.Context, rentAmount decimal.Decimal) ([]dtos.PropertyDto, error)
	ListAll(ctx context.Context) ([]dtos.PropertyDto, error)
}

type propertyService struct {
	repo repositories.PropertyRepository
	log  *logrus.Logger
}

func NewPropertyService(repo repositories.PropertyRepository, log *logrus.Logger) PropertyService {
	return &propertyService{repo: repo, log: log}
}

/* ------------------------------------------------------------------
   Writes
------------------------------------------------------------------ */

func (s *propertyService) Create(ctx context.Context, req *dtos.PropertyRequest) (*dtos.PropertyResponse, error) {
	s.log.Infof("Creating new property with title: %s", req.Title)

	if err := s.checkAlreadyExists(ctx, req); err != nil {
		return nil, err
	}

	property := mapToModel(req)
	if err := s.repo.Save(ctx, property); err != nil {
		// Two concurrent creates can both pass the pre-check; the unique
		// indexes are the backstop and get the same conflict answer.
		if field, ok := repositories.UniqueViolationField(err); ok {
			return nil, utils.NewConflictError(requestFieldValue(req, field))
		}
		return nil, utils.NewInternalError("Failed to create property", err)
	}

	return &dtos.PropertyResponse{
		PropertyID:  property.ID,
		Message:     "Property created successfully",
		Success:     true,
		Title:       property.Title,
		Description: property.Description,
		RentAmount:  property.RentAmount,
		Image:       property.Image,
		Image2:      property.Image2,
		Image3:      property.Image3,
		Image4:      property.Image4,
	}, nil
}

func (s *propertyService) Update(ctx context.Context, id int64, req *dtos.PropertyRequest) (*dtos.PropertyResponse, error) {
	s.log.Infof("Updating property with ID: %d", id)

	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return nil, utils.NewInternalError("Failed to look up property", err)
	}
	if !exists {
		return nil, utils.NewNotFoundError(id)
	}

	// Overwrite semantics: the whole record is replaced, only the id is
	// retained. Uniqueness is checked on create only.
	property := mapToModel(req)
	property.ID = id
	if err := s.repo.Save(ctx, property); err != nil {
		return nil, utils.NewInternalError("Failed to update property", err)
	}
	s.log.Infof("Property updated successfully with ID: %d", id)

	return &dtos.PropertyResponse{
		PropertyID: id,
		Message:    "Property updated successfully",
		Success:    true,
	}, nil
}

func (s *propertyService) UpdateStatus(ctx context.Context, id int64, rented bool) (*dtos.PropertyResponse, error) {
	s.log.Infof("Updating rented status of property %d to %t", id, rented)

	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return nil, utils.NewInternalError("Failed to look up property", err)
	}
	if !exists {
		return nil, utils.NewNotFoundError(id)
	}

	if err := s.repo.SetRented(ctx, id, rented); err != nil {
		return nil, utils.NewInternalError("Failed to update property status", err)
	}

	return &dtos.PropertyResponse{
		PropertyID: id,
		Message:    "Property status updated successfully",
		Success:    true,
	}, nil
}

func (s *propertyService) Delete(ctx context.Context, id int64) (*dtos.PropertyResponse, error) {
	s.log.Infof("Deleting property with ID: %d", id)

	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return nil, utils.NewInternalError("Failed to look up property", err)
	}
	if !exists {
		return nil, utils.NewNotFoundError(id)
	}

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return nil, utils.NewInternalError("Failed to delete property", err)
	}
	s.log.Infof("Property deleted successfully with ID: %d", id)

	return &dtos.PropertyResponse{
		PropertyID: id,
		Message:    "Property deleted successfully",
		Success:    true,
	}, nil
}

/* ------------------------------------------------------------------
   Reads
------------------------------------------------------------------ */

func (s *propertyService) GetByID(ctx context.Context, id int64) (*dtos.PropertyResponse, error) {
	s.log.Infof("Fetching property with ID: %d", id)

	property, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.NewInternalError("Failed to fetch property", err)
	}
	if property == nil {
		return nil, utils.NewNotFoundError(id)
	}

	return &dtos.PropertyResponse{
		PropertyID:  property.ID,
		Message:     "Property retrieved successfully",
		Success:     true,
		Title:       property.Title,
		Description: property.Description,
		RentAmount:  property.RentAmount,
		Image:       property.Image,
		Image2:      property.Image2,
		Image3:      property.Image3,
		Image4:      property.Image4,
	}, nil
}

func (s *propertyService) SearchByLocation(ctx context.Context, location string) ([]dtos.PropertyDto, error) {
	s.log.Infof("Searching properties by location: %s", location)

	locationType, ok := models.ParseLocationType(location)
	if !ok {
		s.log.Warnf("Invalid location type: %s", location)
		return []dtos.PropertyDto{}, nil
	}

	properties, err := s.repo.FindByLocation(ctx, locationType)
	if err != nil {
		return nil, utils.NewInternalError("Failed to search properties by location", err)
	}
	return dtos.NewPropertyDtosFromModels(properties), nil
}

func (s *propertyService) SearchByHouseType(ctx context.Context, houseType string) ([]dtos.PropertyDto, error) {
	s.log.Infof("Searching properties by house type: %s", houseType)

	// House-type parsing is case-sensitive: "apartment" finds nothing.
	parsed, ok := models.ParseHouseType(houseType)
	if !ok {
		s.log.Warnf("Invalid house type: %s", houseType)
		return []dtos.PropertyDto{}, nil
	}

	properties, err := s.repo.FindByHouseType(ctx, parsed)
	if err != nil {
		return nil, utils.NewInternalError("Failed to search properties by house type", err)
	}
	return dtos.NewPropertyDtosFromModels(properties), nil
}

func (s *propertyService) SearchBySurfaceArea(ctx context.Context, surfaceArea string) ([]dtos.PropertyDto, error) {
	s.log.Infof("Searching properties by surface area: %s", surfaceArea)

	properties, err := s.repo.FindBySurfaceAreaContaining(ctx, surfaceArea)
	if err != nil {
		return nil, utils.NewInternalError("Failed to search properties by surface area", err)
	}
	return dtos.NewPropertyDtosFromModels(properties), nil
}

func (s *propertyService) SearchByInterior(ctx context.Context, interior string) ([]dtos.PropertyDto, error) {
	s.log.Infof("Searching properties by interior: %s", interior)

	properties, err := s.repo.FindByInteriorContaining(ctx, interior)
	if err != nil {
		return nil, utils.NewInternalError("Failed to search properties by interior", err)
	}
	return dtos.NewPropertyDtosFromModels(properties), nil
}

func (s *propertyService) SearchByMaxRent(ctx context.Context, rentAmount decimal.Decimal) ([]dtos.PropertyDto, error) {
	s.log.Infof("Searching properties by max rent amount: %s", rentAmount)

	properties, err := s.repo.FindByRentLessOrEqual(ctx, rentAmount)
	if err != nil {
		return nil, utils.NewInternalError("Failed to search properties by rent amount", err)
	}
	return dtos.NewPropertyDtosFromModels(properties), nil
}

func (s *propertyService) ListAll(ctx context.Context) ([]dtos.PropertyDto, error) {
	s.log.Info("Fetching all properties")

	properties, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, utils.NewInternalError("Failed to fetch properties", err)
	}
	return dtos.NewPropertyDtosFromModels(properties), nil
}

/* ------------------------------------------------------------------
   internals
------------------------------------------------------------------ */

// checkAlreadyExists runs the create-time uniqueness checks in a fixed
// order; the first collision wins and is reported by its value.
func (s *propertyService) checkAlreadyExists(ctx context.Context, req *dtos.PropertyRequest) error {
	checks := []struct {
		value  string
		exists func(context.Context, string) (bool, error)
	}{
		{req.Title, s.repo.ExistsByTitle},
		{req.PostalCode, s.repo.ExistsByPostalCode},
		{req.StreetAddress, s.repo.ExistsByAddress},
		{req.Interior, s.repo.ExistsByInterior},
		{req.SurfaceArea, s.repo.ExistsBySurfaceArea},
	}

	for _, c := range checks {
		exists, err := c.exists(ctx, c.value)
		if err != nil {
			return utils.NewInternalError("Failed to check property uniqueness", err)
		}
		if exists {
			return utils.NewConflictError(c.value)
		}
	}
	return nil
}

func mapToModel(req *dtos.PropertyRequest) *models.Property {
	locationType, _ := models.ParseLocationType(req.LocationType)
	houseType, _ := models.ParseHouseType(req.PropertyType)

	quantity := 0
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	return &models.Property{
		Title:           req.Title,
		Description:     req.Description,
		Quantity:        quantity,
		RentAmount:      req.RentAmount,
		SecurityDeposit: req.SecurityDeposit,
		Address:         req.StreetAddress,
		RentalCondition: req.RentalCondition,
		PostalCode:      req.PostalCode,
		LocationType:    locationType,
		HouseType:       houseType,
		AvailableDate:   req.AvailableDate,
		Bedrooms:        req.Bedrooms,
		Interior:        req.Interior,
		SurfaceArea:     req.SurfaceArea,
		Image:           req.Image,
		Image2:          req.Image2,
		Image3:          req.Image3,
		Image4:          req.Image4,
	}
}

func requestFieldValue(req *dtos.PropertyRequest, field string) string {
	switch field {
	case "title":
		return req.Title
	case "postalCode":
		return req.PostalCode
	case "address":
		return req.StreetAddress
	case "interior":
		return req.Interior
	case "surfaceArea":
		return req.SurfaceArea
	default:
		return field
	}
}
