package export

import "strings"

// Device describes the card layout for a target screen.
type Device struct {
	Name  string
	Label string
	// Width is the card width in CSS pixels.
	Width int
	// Padding is the CSS padding shorthand around the content.
	Padding string
	// FooterMargin is the CSS gap between content and footer.
	FooterMargin string
}

// Devices lists the supported layouts. Desktop is the fallback.
var Devices = []Device{
	{Name: "desktop", Label: "Desktop", Width: 1024, Padding: "40px 40px 20px", FooterMargin: "30px"},
	{Name: "tablet", Label: "Tablet", Width: 768, Padding: "32px 32px 20px", FooterMargin: "25px"},
	// Phone leaves extra top padding for notches.
	{Name: "phone", Label: "Phone", Width: 375, Padding: "50px 24px 20px", FooterMargin: "20px"},
}

// LookupDevice finds a device by case-insensitive name. Unknown names return
// desktop and false.
func LookupDevice(name string) (Device, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, device := range Devices {
		if device.Name == name {
			return device, true
		}
	}
	return Devices[0], false
}
