// file: internals/features/boarding/dormitories/dto/boarding_dormitory_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	m "pesantrenku_backend/internals/features/boarding/dormitories/model"
)

func strPtrOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

func uuidPtrFromString(s *string) (*uuid.UUID, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	id, err := uuid.Parse(strings.TrimSpace(*s))
	if err != nil {
		return nil, err
	}
	return &id, nil
}

/* =========================================================
   Requests
   ========================================================= */

type CreateBoardingDormitoryRequest struct {
	BoardingDormitoryName           string  `json:"boarding_dormitory_name" validate:"required,max=100"`
	BoardingDormitoryGender         *string `json:"boarding_dormitory_gender,omitempty" validate:"omitempty,oneof=L P"`
	BoardingDormitoryCapacity       *int    `json:"boarding_dormitory_capacity,omitempty" validate:"omitempty,gte=1"`
	BoardingDormitoryDescription    *string `json:"boarding_dormitory_description,omitempty"`
	BoardingDormitoryGuardianUserID *string `json:"boarding_dormitory_guardian_user_id,omitempty" validate:"omitempty,uuid4"`
}

func (r *CreateBoardingDormitoryRequest) ApplyToModel(dst *m.BoardingDormitoryModel) error {
	guardianID, err := uuidPtrFromString(r.BoardingDormitoryGuardianUserID)
	if err != nil {
		return err
	}
	dst.BoardingDormitoryName = strings.TrimSpace(r.BoardingDormitoryName)
	dst.BoardingDormitoryGender = strPtrOrNil(r.BoardingDormitoryGender)
	dst.BoardingDormitoryCapacity = r.BoardingDormitoryCapacity
	dst.BoardingDormitoryDescription = strPtrOrNil(r.BoardingDormitoryDescription)
	dst.BoardingDormitoryGuardianUserID = guardianID
	return nil
}

type UpdateBoardingDormitoryRequest struct {
	BoardingDormitoryName           *string `json:"boarding_dormitory_name,omitempty" validate:"omitempty,max=100"`
	BoardingDormitoryGender         *string `json:"boarding_dormitory_gender,omitempty" validate:"omitempty,oneof=L P"`
	BoardingDormitoryCapacity       *int    `json:"boarding_dormitory_capacity,omitempty" validate:"omitempty,gte=1"`
	BoardingDormitoryDescription    *string `json:"boarding_dormitory_description,omitempty"`
	BoardingDormitoryGuardianUserID *string `json:"boarding_dormitory_guardian_user_id,omitempty" validate:"omitempty,uuid4"`
}

func (r *UpdateBoardingDormitoryRequest) Apply(dst *m.BoardingDormitoryModel) error {
	if r.BoardingDormitoryName != nil {
		dst.BoardingDormitoryName = strings.TrimSpace(*r.BoardingDormitoryName)
	}
	if r.BoardingDormitoryGender != nil {
		dst.BoardingDormitoryGender = strPtrOrNil(r.BoardingDormitoryGender)
	}
	if r.BoardingDormitoryCapacity != nil {
		dst.BoardingDormitoryCapacity = r.BoardingDormitoryCapacity
	}
	if r.BoardingDormitoryDescription != nil {
		dst.BoardingDormitoryDescription = strPtrOrNil(r.BoardingDormitoryDescription)
	}
	if r.BoardingDormitoryGuardianUserID != nil {
		guardianID, err := uuidPtrFromString(r.BoardingDormitoryGuardianUserID)
		if err != nil {
			return err
		}
		dst.BoardingDormitoryGuardianUserID = guardianID
	}
	return nil
}

func (r *CreateBoardingDormitoryRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

func (r *UpdateBoardingDormitoryRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

/* =========================================================
   Response
   ========================================================= */

type BoardingDormitoryResponse struct {
	BoardingDormitoryID             uuid.UUID  `json:"boarding_dormitory_id"`
	BoardingDormitoryName           string     `json:"boarding_dormitory_name"`
	BoardingDormitoryGender         *string    `json:"boarding_dormitory_gender,omitempty"`
	BoardingDormitoryCapacity       *int       `json:"boarding_dormitory_capacity,omitempty"`
	BoardingDormitoryDescription    *string    `json:"boarding_dormitory_description,omitempty"`
	BoardingDormitoryGuardianUserID *uuid.UUID `json:"boarding_dormitory_guardian_user_id,omitempty"`
	BoardingDormitoryCreatedAt      time.Time  `json:"boarding_dormitory_created_at"`
	BoardingDormitoryUpdatedAt      time.Time  `json:"boarding_dormitory_updated_at"`
}

func NewBoardingDormitoryResponse(src *m.BoardingDormitoryModel) BoardingDormitoryResponse {
	return BoardingDormitoryResponse{
		BoardingDormitoryID:             src.BoardingDormitoryID,
		BoardingDormitoryName:           src.BoardingDormitoryName,
		BoardingDormitoryGender:         src.BoardingDormitoryGender,
		BoardingDormitoryCapacity:       src.BoardingDormitoryCapacity,
		BoardingDormitoryDescription:    src.BoardingDormitoryDescription,
		BoardingDormitoryGuardianUserID: src.BoardingDormitoryGuardianUserID,
		BoardingDormitoryCreatedAt:      src.BoardingDormitoryCreatedAt,
		BoardingDormitoryUpdatedAt:      src.BoardingDormitoryUpdatedAt,
	}
}
