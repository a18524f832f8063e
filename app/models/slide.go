package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const HomeSlideCollection = "homes"

// HomeSlide is a homepage promotional banner pair. Slides are create-only;
// no update or delete path exists.
type HomeSlide struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	DesktopBannerImage string             `bson:"desktopBannerImage" json:"desktopBannerImage"`
	MobileBannerImage  string             `bson:"mobileBannerImage" json:"mobileBannerImage"`
	Links              string             `bson:"links,omitempty" json:"links"`
	Section            string             `bson:"section,omitempty" json:"section"`
	CreatedAt          time.Time          `bson:"createdAt" json:"createdAt"`
}
