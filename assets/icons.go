package assets

import "path/filepath"

// Icon pixel sizes. Social icons are printed larger than the contact icons
// that sit inline with footer text.
const (
	SocialIconPixels  = 56
	ContactIconPixels = 16
)

// IconSet holds the bundled footer icons. Any member may be nil.
type IconSet struct {
	Facebook  *Image
	Instagram *Image
	WhatsApp  *Image
	Address   *Image
	Phone     *Image
}

var iconFiles = []struct {
	file string
	size int
	set  func(*IconSet, *Image)
}{
	{"facebook.webp", SocialIconPixels, func(s *IconSet, img *Image) { s.Facebook = img }},
	{"insta.webp", SocialIconPixels, func(s *IconSet, img *Image) { s.Instagram = img }},
	{"whatsapp.webp", SocialIconPixels, func(s *IconSet, img *Image) { s.WhatsApp = img }},
	{"address.webp", ContactIconPixels, func(s *IconSet, img *Image) { s.Address = img }},
	{"phone.webp", ContactIconPixels, func(s *IconSet, img *Image) { s.Phone = img }},
}

// Icons returns the icon set. Each icon is decoded and resized once per
// Cache; later calls are served from memory.
func (c *Cache) Icons() IconSet {
	var set IconSet
	dir := c.dir(c.iconDir)
	for _, f := range iconFiles {
		f.set(&set, c.Load(filepath.Join(dir, f.file), f.size))
	}
	return set
}
