package response

import (
	"time"

	"marketplace-admin/internal/data/entity"
)

type AdminResponse struct {
	AdminID   string    `json:"admin_id"`
	Username  string    `json:"username"`
	FullName  string    `json:"full_name"`
	CreatedAt time.Time `json:"created_at"`
}

func AdminToResponse(admin *entity.Admin) *AdminResponse {
	return &AdminResponse{
		AdminID:   admin.ID.String(),
		Username:  admin.Username,
		FullName:  admin.FullName,
		CreatedAt: admin.CreatedAt,
	}
}
