package util

import (
	"fmt"
	"math/rand"
)

// Stock avatars assigned to users who register without a picture.
var defaultProfilePics = []string{
	"/uploads/defaults/avatar-1.jpg",
	"/uploads/defaults/avatar-2.jpg",
	"/uploads/defaults/avatar-3.jpg",
	"/uploads/defaults/avatar-4.jpg",
	"/uploads/defaults/avatar-5.jpg",
}

func RandomProfilePic() string {
	return defaultProfilePics[rand.Intn(len(defaultProfilePics))]
}

// RandomDisplayName suffixes the chosen username with a short random tag so
// display names stay distinguishable without being unique-constrained.
func RandomDisplayName(username string) string {
	return fmt.Sprintf("%s-%04d", username, rand.Intn(10000))
}
