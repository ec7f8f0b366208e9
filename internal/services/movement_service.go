package services

import (
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/johanmora/ganaderia-backend/internal/dto"
	"github.com/johanmora/ganaderia-backend/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrMovementNotFound = errors.New("movement not found")
	ErrInvalidKind      = errors.New("invalid movement kind")
	ErrCategoryRequired = errors.New("animal category is required")
	ErrInvalidQuantity  = errors.New("quantity must be positive")
	ErrFarmRequired     = errors.New("farm_id is required")
)

func validKind(kind string) bool {
	switch kind {
	case models.MovementEntrada, models.MovementSalida,
		models.MovementNacimiento, models.MovementMuerte:
		return true
	}
	return false
}

type MovementService struct {
	db *gorm.DB
}

func NewMovementService(db *gorm.DB) *MovementService {
	return &MovementService{db: db}
}

func (s *MovementService) validate(req *dto.MovementRequest) error {
	if req.FarmID == uuid.Nil {
		return ErrFarmRequired
	}
	if !validKind(req.Kind) {
		return ErrInvalidKind
	}
	if req.Category == "" {
		return ErrCategoryRequired
	}
	if req.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	return nil
}

func (s *MovementService) Create(userID string, req *dto.MovementRequest) (*models.Movement, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	if err := s.farmExists(req.FarmID); err != nil {
		return nil, err
	}

	movement := models.Movement{
		FarmID:     req.FarmID,
		Date:       req.Date,
		Kind:       req.Kind,
		Category:   req.Category,
		Quantity:   req.Quantity,
		TotalKg:    req.TotalKg,
		Details:    datatypes.JSON(req.Details),
		RecordedBy: userID,
	}
	if err := s.db.Create(&movement).Error; err != nil {
		return nil, fmt.Errorf("failed to create movement: %w", err)
	}
	return &movement, nil
}

func (s *MovementService) farmExists(farmID uuid.UUID) error {
	var count int64
	if err := s.db.Model(&models.Farm{}).Where("id = ?", farmID).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check farm: %w", err)
	}
	if count == 0 {
		return ErrFarmNotFound
	}
	return nil
}

// List returns movements, newest first, optionally filtered by farm.
func (s *MovementService) List(farmID *uuid.UUID) ([]models.Movement, error) {
	query := s.db.Order("date DESC")
	if farmID != nil {
		query = query.Where("farm_id = ?", *farmID)
	}
	var movements []models.Movement
	if err := query.Find(&movements).Error; err != nil {
		return nil, fmt.Errorf("failed to list movements: %w", err)
	}
	return movements, nil
}

func (s *MovementService) Get(id uuid.UUID) (*models.Movement, error) {
	var movement models.Movement
	if err := s.db.First(&movement, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovementNotFound
		}
		return nil, fmt.Errorf("failed to fetch movement: %w", err)
	}
	return &movement, nil
}

func (s *MovementService) Update(id uuid.UUID, req *dto.MovementRequest) (*models.Movement, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	movement, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"farm_id":  req.FarmID,
		"date":     req.Date,
		"kind":     req.Kind,
		"category": req.Category,
		"quantity": req.Quantity,
		"total_kg": req.TotalKg,
	}
	if req.Details != nil {
		updates["details"] = datatypes.JSON(req.Details)
	}
	if err := s.db.Model(movement).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update movement: %w", err)
	}
	return movement, nil
}

func (s *MovementService) Delete(id uuid.UUID) error {
	result := s.db.Delete(&models.Movement{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete movement: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrMovementNotFound
	}
	return nil
}

// Summary folds the full movement log into net head counts per farm and
// category. Entradas and nacimientos add, salidas and muertes subtract;
// weight totals follow the same sign.
func (s *MovementService) Summary() (*dto.LivestockSummary, error) {
	var movements []models.Movement
	if err := s.db.Find(&movements).Error; err != nil {
		return nil, fmt.Errorf("failed to load movements: %w", err)
	}

	var farms []models.Farm
	if err := s.db.Find(&farms).Error; err != nil {
		return nil, fmt.Errorf("failed to load farms: %w", err)
	}
	farmNames := make(map[uuid.UUID]string, len(farms))
	for _, f := range farms {
		farmNames[f.ID] = f.Name
	}

	type key struct {
		farm     uuid.UUID
		category string
	}
	rows := make(map[key]*dto.LivestockSummaryRow)

	for _, m := range movements {
		sign := 1
		if m.Kind == models.MovementSalida || m.Kind == models.MovementMuerte {
			sign = -1
		}
		k := key{farm: m.FarmID, category: m.Category}
		row, ok := rows[k]
		if !ok {
			row = &dto.LivestockSummaryRow{
				FarmID:   m.FarmID,
				FarmName: farmNames[m.FarmID],
				Category: m.Category,
			}
			rows[k] = row
		}
		row.Head += sign * m.Quantity
		row.TotalKg += float64(sign) * m.TotalKg
	}

	summary := &dto.LivestockSummary{Rows: make([]dto.LivestockSummaryRow, 0, len(rows))}
	for _, row := range rows {
		summary.Rows = append(summary.Rows, *row)
		summary.TotalHead += row.Head
	}
	sort.Slice(summary.Rows, func(i, j int) bool {
		if summary.Rows[i].FarmName != summary.Rows[j].FarmName {
			return summary.Rows[i].FarmName < summary.Rows[j].FarmName
		}
		return summary.Rows[i].Category < summary.Rows[j].Category
	})
	return summary, nil
}
