package model

import "go.mongodb.org/mongo-driver/bson/primitive"

const SiteSettingsType = "site_settings"

type Company struct {
	Name    string `json:"name" bson:"name"`
	LogoUrl string `json:"logoUrl" bson:"logoUrl"`
}

type HeroContent struct {
	MainHeading         string `json:"mainHeading" bson:"mainHeading"`
	Description         string `json:"description" bson:"description"`
	PrimaryButtonText   string `json:"primaryButtonText" bson:"primaryButtonText"`
	SecondaryButtonText string `json:"secondaryButtonText" bson:"secondaryButtonText"`
}

type SocialMedia struct {
	Facebook  string `json:"facebook" bson:"facebook"`
	Instagram string `json:"instagram" bson:"instagram"`
	Whatsapp  string `json:"whatsapp" bson:"whatsapp"`
}

// Footer uses pointers so that keys missing from older documents can be told
// apart from empty values and backfilled.
type Footer struct {
	Email           string  `json:"email" bson:"email"`
	Phone           string  `json:"phone" bson:"phone"`
	Copyright       string  `json:"copyright" bson:"copyright"`
	DeveloperCredit *string `json:"developerCredit" bson:"developerCredit,omitempty"`
	DeveloperLink   *string `json:"developerLink" bson:"developerLink,omitempty"`
}

type Settings struct {
	Id          primitive.ObjectID `json:"_id" bson:"_id"`
	Type        string             `json:"type" bson:"type"`
	Company     Company            `json:"company" bson:"company"`
	HeroImages  []string           `json:"heroImages" bson:"heroImages"`
	HeroContent HeroContent        `json:"heroContent" bson:"heroContent"`
	SocialMedia SocialMedia        `json:"socialMedia" bson:"socialMedia"`
	Footer      *Footer            `json:"footer" bson:"footer,omitempty"`
	CreatedAt   Date               `json:"createdAt" bson:"createdAt"`
	UpdatedAt   Date               `json:"updatedAt" bson:"updatedAt"`
}

func DefaultFooter() *Footer {
	empty := ""
	credit, link := empty, empty
	return &Footer{
		Email:           "info@travelagency.com",
		Phone:           "+91 98765 43210",
		Copyright:       "© 2025 Travel Agency. All rights reserved.",
		DeveloperCredit: &credit,
		DeveloperLink:   &link,
	}
}

func DefaultSettings() Settings {
	return Settings{
		Type: SiteSettingsType,
		Company: Company{
			Name: "Pawan Krishna Tours & Travells",
		},
		HeroImages: []string{},
		HeroContent: HeroContent{
			MainHeading:         "Discover Your Next Adventure",
			Description:         "Explore breathtaking destinations across India and around the world. Let us craft your perfect journey.",
			PrimaryButtonText:   "Explore All Trips",
			SecondaryButtonText: "Indian Trips",
		},
		SocialMedia: SocialMedia{
			Facebook:  "https://www.facebook.com/profile.php?id=61553794382346",
			Instagram: "https://www.instagram.com/haunting_voyagers/",
			Whatsapp:  "919502606607",
		},
		Footer: DefaultFooter(),
	}
}
