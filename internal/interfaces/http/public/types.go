package public

import (
	"github.com/go-playground/validator/v10"

	"github.com/3cctech/restaurant-awards-services/api/internal/voting/application"
	"github.com/3cctech/restaurant-awards-services/api/internal/voting/domain"
)

var validate = validator.New()

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token        string          `json:"token"`
	Account      accountResponse `json:"account"`
	InitialRoute string          `json:"initialRoute"`
}

type accountResponse struct {
	ID              string `json:"id"`
	Email           string `json:"email"`
	AgreedTerms     bool   `json:"agreedTerms"`
	IsCompleted     bool   `json:"isCompleted"`
	IsAdmin         bool   `json:"isAdmin"`
	LastVisitedPage string `json:"lastVisitedPage,omitempty"`
}

type regionResponse struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Blurb    string   `json:"blurb,omitempty"`
	ImageURL string   `json:"imageUrl,omitempty"`
	Cities   []string `json:"cities"`
}

type sessionResponse struct {
	Account accountResponse `json:"account"`
	Region  *regionResponse `json:"region,omitempty"`
}

type routeTrackRequest struct {
	Path string `json:"path" validate:"required"`
}

type stepGuardResponse struct {
	Allowed  bool   `json:"allowed"`
	Redirect string `json:"redirect,omitempty"`
}

type restaurantResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	City string `json:"city"`
}

type nominateRequest struct {
	Name string `json:"name" validate:"required"`
	City string `json:"city" validate:"required"`
}

type pickResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	City string `json:"city"`
}

type selectionResponse struct {
	Regional           []pickResponse `json:"regional"`
	National           []pickResponse `json:"national"`
	RegionalCanProceed bool           `json:"regionalCanProceed"`
	NationalCanProceed bool           `json:"nationalCanProceed"`
}

type toggleRequest struct {
	ID   string `json:"id" validate:"required"`
	Name string `json:"name" validate:"required"`
	City string `json:"city" validate:"required"`
}

type ratingPayload struct {
	Food     int `json:"food" validate:"min=1,max=5"`
	Service  int `json:"service" validate:"min=1,max=5"`
	Ambience int `json:"ambience" validate:"min=1,max=5"`
}

type ratedItemResponse struct {
	Restaurant pickResponse  `json:"restaurant"`
	Rating     ratingPayload `json:"rating"`
}

type ratingOverviewResponse struct {
	Items  []ratedItemResponse `json:"items"`
	Cursor int                 `json:"cursor"`
}

type advanceRequest struct {
	RestaurantID string        `json:"restaurantId" validate:"required"`
	Rating       ratingPayload `json:"rating"`
}

func buildAccountResponse(account domain.Account) accountResponse {
	return accountResponse{
		ID:              account.ID,
		Email:           account.Email,
		AgreedTerms:     account.AgreedTerms,
		IsCompleted:     account.IsCompleted,
		IsAdmin:         account.IsAdmin,
		LastVisitedPage: account.LastVisitedPage,
	}
}

func buildRegionResponse(region *domain.Region) *regionResponse {
	if region == nil {
		return nil
	}
	return &regionResponse{
		ID:       region.ID,
		Name:     region.Name,
		Blurb:    region.Blurb,
		ImageURL: region.ImageURL,
		Cities:   region.CityNames(),
	}
}

func buildSelectionResponse(selection *domain.Selection) selectionResponse {
	return selectionResponse{
		Regional:           buildPickResponses(selection.Regional),
		National:           buildPickResponses(selection.National),
		RegionalCanProceed: selection.CanProceed(domain.RegionalList),
		NationalCanProceed: selection.CanProceed(domain.NationalList),
	}
}

func buildPickResponses(picks []domain.RestaurantPick) []pickResponse {
	out := make([]pickResponse, 0, len(picks))
	for _, p := range picks {
		out = append(out, pickResponse{ID: p.ID, Name: p.Name, City: p.City})
	}
	return out
}

func buildRatingOverviewResponse(overview *application.RatingOverview) ratingOverviewResponse {
	items := make([]ratedItemResponse, 0, len(overview.Items))
	for _, item := range overview.Items {
		items = append(items, ratedItemResponse{
			Restaurant: pickResponse{ID: item.Pick.ID, Name: item.Pick.Name, City: item.Pick.City},
			Rating:     ratingPayload{Food: item.Rating.Food, Service: item.Rating.Service, Ambience: item.Rating.Ambience},
		})
	}
	return ratingOverviewResponse{Items: items, Cursor: overview.Cursor}
}
