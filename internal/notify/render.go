package notify

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/nanomoomug/spotify-notify-playlist-update/internal/domain"
)

const digestHTMLTemplate = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>{{.Subject}}</title>
</head>
<body>
  <div style="font-family: arial, serif; border: 1px solid #99ff99; padding: 3px; width: 600px; margin: auto; background-color: #99ff99;">
    <table>
      <tr>
        <td>
          {{if .Playlist.ImageURL}}<a href="{{.Playlist.ExternalURL}}"><img src="{{.Playlist.ImageURL}}" width="200" height="200" /></a>{{end}}
        </td>
        <td style="vertical-align: text-top; padding-left: 10px;">
          <div style="text-align: center;">New music was added to</div>
          <h2><a href="{{.Playlist.ExternalURL}}" style="color: #373737;">{{.Playlist.Name}}</a></h2>
          <h3 style="text-align: center;">{{.Playlist.Description}}</h3>
        </td>
      </tr>
    </table>
    <hr size="1" color="black" width="90%" />
    <div style="margin-top: 10px; margin-bottom: 10px;">The following tracks were added:</div>
    {{range .Items}}
    <table style="border: 1px solid black; width: 100%; margin-bottom: 10px; font-size: 14px;">
      <tr>
        <td style="width: 100px;">
          {{if .Album.ImageURL}}<a href="{{.ExternalURL}}"><img src="{{.Album.ImageURL}}" /></a>{{end}}
        </td>
        <td>
          <table>
            <tr>
              <td style="text-align: right; padding-right: 5px;">Artist(s):</td>
              <td>{{range $i, $artist := .Artists}}{{if $i}}, {{end}}{{if $artist.ExternalURL}}<a href="{{$artist.ExternalURL}}" style="color: #373737;">{{$artist.Name}}</a>{{else}}{{$artist.Name}}{{end}}{{end}}</td>
            </tr>
            <tr>
              <td style="text-align: right; padding-right: 5px;">Title:</td>
              <td><a href="{{.ExternalURL}}" style="color: #373737;">{{.Title}}</a></td>
            </tr>
            <tr>
              <td style="text-align: right; padding-right: 5px;">Album:</td>
              <td><a href="{{.Album.ExternalURL}}" style="color: #373737;">{{.Album.Name}}</a></td>
            </tr>
          </table>
        </td>
      </tr>
    </table>
    {{end}}
  </div>
</body>
</html>`

var digestTemplate = template.Must(template.New("digest").Parse(digestHTMLTemplate))

type digestData struct {
	Subject  string
	Playlist *domain.Snapshot
	Items    []domain.Item
}

// Subject builds the notification subject line for a playlist.
func Subject(playlist *domain.Snapshot) string {
	return fmt.Sprintf("Update to the playlist %q", playlist.Name)
}

// RenderDigest produces the HTML digest body listing the newly added items.
func RenderDigest(playlist *domain.Snapshot, items []domain.Item) (string, error) {
	var buf bytes.Buffer
	err := digestTemplate.Execute(&buf, digestData{
		Subject:  Subject(playlist),
		Playlist: playlist,
		Items:    items,
	})
	if err != nil {
		return "", fmt.Errorf("render digest: %w", err)
	}
	return buf.String(), nil
}
