package ui

import (
	"net/url"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/lang"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/chefolio/chefolio/backend/portfolio"
	"github.com/chefolio/chefolio/sharedutil"
	myTheme "github.com/chefolio/chefolio/ui/theme"
	"github.com/chefolio/chefolio/ui/util"
)

type contactLink struct {
	icon fyne.Resource
	text string
	url  *url.URL
}

// NewFooter builds the contact footer. Contact methods the chef
// has not filled in are left out.
func NewFooter(chef *portfolio.Chef) fyne.CanvasObject {
	heading := widget.NewRichTextWithText(lang.L("Contact"))
	heading.Segments[0].(*widget.TextSegment).Style = widget.RichTextStyleSubHeading
	heading.Segments[0].(*widget.TextSegment).Style.Alignment = fyne.TextAlignCenter

	row := container.NewHBox()
	for _, l := range contactLinks(chef.Contact) {
		row.Add(container.NewHBox(widget.NewIcon(l.icon), widget.NewHyperlink(l.text, l.url)))
	}

	copyright := widget.NewLabel("© " + chef.Name)
	copyright.Alignment = fyne.TextAlignCenter
	copyright.Importance = widget.LowImportance

	bg := myTheme.NewThemedRectangle(myTheme.ColorNamePageHeader)
	return container.NewStack(bg,
		container.New(layout.NewCustomPaddedLayout(20, 20, 16, 16),
			container.NewVBox(
				heading,
				container.NewCenter(row),
				copyright,
			)))
}

func contactLinks(c portfolio.Contact) []contactLink {
	return sharedutil.FilterSlice([]contactLink{
		{theme.ComputerIcon(), c.Phone, util.PhoneURL(c.Phone)},
		{theme.MailComposeIcon(), c.Email, util.EmailURL(c.Email)},
		{theme.AccountIcon(), lang.L("WhatsApp"), util.WhatsAppURL(c.WhatsApp)},
	}, func(l contactLink) bool {
		return l.url != nil && (l.url.Opaque != "" || l.url.Host != "")
	})
}
