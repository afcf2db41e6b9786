// file: internals/features/boarding/holidays/dto/boarding_holiday_dto.go
package dto

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	m "pesantrenku_backend/internals/features/boarding/holidays/model"
)

var layoutDate = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date (use YYYY-MM-DD)")

func ParseDateYYYYMMDD(s string) (time.Time, error) {
	t, err := time.Parse(layoutDate, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

/* =========================================================
   Requests
   ========================================================= */

type CreateBoardingHolidayRequest struct {
	BoardingHolidayDate       string `json:"boarding_holiday_date" validate:"required,datetime=2006-01-02"`
	BoardingHolidayName       string `json:"boarding_holiday_name" validate:"required,max=100"`
	BoardingHolidayIsNational *bool  `json:"boarding_holiday_is_national" validate:"omitempty"`
}

func (r CreateBoardingHolidayRequest) ToModel() (m.BoardingHolidayModel, error) {
	date, err := ParseDateYYYYMMDD(r.BoardingHolidayDate)
	if err != nil {
		return m.BoardingHolidayModel{}, err
	}
	isNational := true
	if r.BoardingHolidayIsNational != nil {
		isNational = *r.BoardingHolidayIsNational
	}
	return m.BoardingHolidayModel{
		BoardingHolidayDate:       date,
		BoardingHolidayName:       strings.TrimSpace(r.BoardingHolidayName),
		BoardingHolidayIsNational: isNational,
	}, nil
}

type UpdateBoardingHolidayRequest struct {
	BoardingHolidayDate       *string `json:"boarding_holiday_date" validate:"omitempty,datetime=2006-01-02"`
	BoardingHolidayName       *string `json:"boarding_holiday_name" validate:"omitempty,max=100"`
	BoardingHolidayIsNational *bool   `json:"boarding_holiday_is_national" validate:"omitempty"`
}

// Apply ke model existing (controller: ambil existing → req.Apply → Save)
func (r UpdateBoardingHolidayRequest) Apply(dst *m.BoardingHolidayModel) error {
	if r.BoardingHolidayDate != nil {
		date, err := ParseDateYYYYMMDD(*r.BoardingHolidayDate)
		if err != nil {
			return err
		}
		dst.BoardingHolidayDate = date
	}
	if r.BoardingHolidayName != nil {
		name := strings.TrimSpace(*r.BoardingHolidayName)
		if name == "" {
			return errors.New("boarding_holiday_name tidak boleh kosong")
		}
		dst.BoardingHolidayName = name
	}
	if r.BoardingHolidayIsNational != nil {
		dst.BoardingHolidayIsNational = *r.BoardingHolidayIsNational
	}
	return nil
}

func (r CreateBoardingHolidayRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

func (r UpdateBoardingHolidayRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

/* =========================================================
   Response
   ========================================================= */

type BoardingHolidayResponse struct {
	BoardingHolidayID         uuid.UUID `json:"boarding_holiday_id"`
	BoardingHolidayDate       string    `json:"boarding_holiday_date"` // YYYY-MM-DD
	BoardingHolidayName       string    `json:"boarding_holiday_name"`
	BoardingHolidayIsNational bool      `json:"boarding_holiday_is_national"`
	BoardingHolidayCreatedAt  time.Time `json:"boarding_holiday_created_at"`
	BoardingHolidayUpdatedAt  time.Time `json:"boarding_holiday_updated_at"`
}

func NewBoardingHolidayResponse(src *m.BoardingHolidayModel) BoardingHolidayResponse {
	return BoardingHolidayResponse{
		BoardingHolidayID:         src.BoardingHolidayID,
		BoardingHolidayDate:       src.BoardingHolidayDate.Format(layoutDate),
		BoardingHolidayName:       src.BoardingHolidayName,
		BoardingHolidayIsNational: src.BoardingHolidayIsNational,
		BoardingHolidayCreatedAt:  src.BoardingHolidayCreatedAt,
		BoardingHolidayUpdatedAt:  src.BoardingHolidayUpdatedAt,
	}
}
