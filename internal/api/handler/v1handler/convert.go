package v1handler

import (
	"recap/internal/api/specs/v1specs"
	"recap/pkg/domain"
	"recap/pkg/pacer"

	"github.com/google/uuid"
)

// optString leaves the field unset for empty values.
func optString(v string) v1specs.OptString {
	if v == "" {
		return v1specs.OptString{}
	}

	return v1specs.NewOptString(v)
}

func DomainPageToV1Specs(in *domain.Page) *v1specs.Page {
	return &v1specs.Page{
		URL:               in.URL,
		Kind:              v1specs.PageKind(in.Kind),
		Pacer:             in.Kind.IsPacer(),
		Court:             optString(in.Court),
		CanonicalCourt:    optString(in.CanonicalCourt),
		CourtAbbreviation: optString(in.CourtAbbreviation),
		Appellate:         in.Appellate,
		CaseNumber:        optString(in.CaseNumber),
		DocumentId:        optString(in.DocumentID),
		BaseName:          optString(in.BaseName),
	}
}

func CourtToV1Specs(code pacer.CourtCode) v1specs.Court {
	abbr, _ := pacer.CourtAbbreviation(code)

	return v1specs.Court{
		Code:         code,
		Abbreviation: optString(abbr),
		Canonical:    pacer.CanonicalCourt(code),
		Appellate:    pacer.IsAppellateCourt(code),
	}
}

func DomainToolbarToV1Specs(in domain.ToolbarState) *v1specs.Toolbar {
	icons := make(v1specs.IconSet, len(in.Icons))
	for size, path := range in.Icons {
		icons[size] = path
	}

	return &v1specs.Toolbar{
		Title: in.Title,
		Icons: icons,
	}
}

func DomainLoginStateToV1Specs(in domain.LoginState) *v1specs.LoginStatus {
	out := v1specs.LoginStatus{LoggedIn: in.LoggedIn()}
	if in != domain.LoginStateUnknown {
		out.State = v1specs.NewOptLoginState(v1specs.LoginState(in))
	}

	return &out
}

func DomainNotificationToV1Specs(in domain.Notification) v1specs.Notification {
	return v1specs.Notification{
		ID:        uuid.UUID(in.ID),
		Kind:      v1specs.NotificationKind(in.Kind),
		Title:     in.Title,
		Message:   in.Message,
		CreatedAt: in.CreatedAt.UTC(),
	}
}

func DomainOptionsToV1Specs(in domain.Options) *v1specs.OptionSet {
	return &v1specs.OptionSet{
		RecapDisabled:       in.RecapDisabled,
		UploadNotifications: in.UploadNotifications,
		StatusNotifications: in.StatusNotifications,
	}
}
