package member

import "github.com/changhyeonkim/jpashop/go-api-server/internal/model"

type AddressResponse struct {
	City    string `json:"city"`
	Street  string `json:"street"`
	Zipcode string `json:"zipcode"`
}

type MemberResponse struct {
	ID      uint32           `json:"id"`
	Name    string           `json:"name"`
	Address *AddressResponse `json:"address,omitempty"`
}

type GetProfileResponse struct {
	ID      uint32           `json:"id"`
	Name    string           `json:"name"`
	Email   string           `json:"email"`
	Address *AddressResponse `json:"address,omitempty"`
}

type ListMembersResponse struct {
	Count   int              `json:"count"`
	Members []MemberResponse `json:"members"`
}

type UpdateNameRequest struct {
	Name string `json:"name" binding:"required,notblank,max=20"`
}

func toAddressResponse(address model.Address) *AddressResponse {
	if address.IsEmpty() {
		return nil
	}
	return &AddressResponse{
		City:    address.City,
		Street:  address.Street,
		Zipcode: address.Zipcode,
	}
}

func toMemberResponse(member *model.Member) MemberResponse {
	return MemberResponse{
		ID:      member.ID,
		Name:    member.Name,
		Address: toAddressResponse(member.Address),
	}
}

func toMemberResponses(members []model.Member) []MemberResponse {
	responses := make([]MemberResponse, 0, len(members))
	for i := range members {
		responses = append(responses, toMemberResponse(&members[i]))
	}
	return responses
}
