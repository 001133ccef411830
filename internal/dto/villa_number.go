package dto

import "villa_api/internal/domain" // Domain models

// VillaNumberDTO is the wire-facing shape of a bookable unit
type VillaNumberDTO struct {
	VillaNo        uint   `json:"villaNo"`        // Room number
	VillaID        uint   `json:"villaId"`        // Owning villa id
	SpecialDetails string `json:"specialDetails"` // Special details
}

// VillaNumberCreateDTO is the request body for creating a villa number
type VillaNumberCreateDTO struct {
	VillaNo        uint   `json:"villaNo" binding:"required"` // Room number, client supplied
	VillaID        uint   `json:"villaId" binding:"required"` // Owning villa id, must exist
	SpecialDetails string `json:"specialDetails"`             // Special details
}

// VillaNumberUpdateDTO is the request body for full updates
type VillaNumberUpdateDTO struct {
	VillaNo        uint   `json:"villaNo" binding:"required"` // Must match the path id
	VillaID        uint   `json:"villaId" binding:"required"` // Owning villa id, must exist
	SpecialDetails string `json:"specialDetails"`             // Special details
}

// ToVillaNumberDTO maps a persisted villa number onto its wire shape
func ToVillaNumberDTO(vn *domain.VillaNumber) VillaNumberDTO {
	return VillaNumberDTO{
		VillaNo:        vn.VillaNo,        // Room number
		VillaID:        vn.VillaID,        // Owning villa id
		SpecialDetails: vn.SpecialDetails, // Special details
	}
}

// ToVillaNumberDTOs maps a slice of villa numbers onto their wire shapes
func ToVillaNumberDTOs(villaNumbers []domain.VillaNumber) []VillaNumberDTO {
	dtos := make([]VillaNumberDTO, len(villaNumbers))
	for i := range villaNumbers {
		dtos[i] = ToVillaNumberDTO(&villaNumbers[i]) // Map each villa number
	}
	return dtos
}

// FromVillaNumberCreateDTO builds a new villa number entity
func FromVillaNumberCreateDTO(d *VillaNumberCreateDTO) domain.VillaNumber {
	return domain.VillaNumber{
		VillaNo:        d.VillaNo,        // Room number
		VillaID:        d.VillaID,        // Owning villa id
		SpecialDetails: d.SpecialDetails, // Special details
	}
}

// ApplyVillaNumberUpdateDTO maps the update shape onto an existing entity
func ApplyVillaNumberUpdateDTO(vn *domain.VillaNumber, d *VillaNumberUpdateDTO) {
	vn.VillaNo = d.VillaNo               // Room number
	vn.VillaID = d.VillaID               // Owning villa id
	vn.SpecialDetails = d.SpecialDetails // Special details
}
