package ingest

import (
	"github.com/odurisile/DNA-Insight/models/constants"

	"github.com/google/uuid"
)

type State string

const (
	Queued  State = "Queued"
	Running State = "Running"
	Done    State = "Done"
	Error   State = "Error"
)

type UploadRequest struct {
	Id        uuid.UUID           `json:"id"`
	Filename  string              `json:"filename"`
	State     State               `json:"state"`
	Vendor    constants.Vendor    `json:"vendor,omitempty"`
	Tier      constants.ParseTier `json:"tier,omitempty"`
	Calls     int                 `json:"calls"`
	Message   string              `json:"message"`
	CreatedAt string              `json:"createdAt"`
	UpdatedAt string              `json:"updatedAt"`
}

type UploadResponseDTO struct {
	Id       uuid.UUID           `json:"id"`
	Filename string              `json:"filename"`
	State    State               `json:"state"`
	Vendor   constants.Vendor    `json:"vendor"`
	Tier     constants.ParseTier `json:"tier"`
	Calls    int                 `json:"calls"`
	Message  string              `json:"message"`
}

func (r *UploadRequest) ToResponseDTO() UploadResponseDTO {
	return UploadResponseDTO{
		Id:       r.Id,
		Filename: r.Filename,
		State:    r.State,
		Vendor:   r.Vendor,
		Tier:     r.Tier,
		Calls:    r.Calls,
		Message:  r.Message,
	}
}
