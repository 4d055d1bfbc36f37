package extension

// mapping relates one media type to the comma-separated list of file
// extensions it is known by.
type mapping struct {
	mediaType  string
	extensions string
}

// primaryMappings are consulted first during forward resolution and
// are never overridden, not even by the platform registry. Order
// matters only when two entries share an extension: the first wins.
var primaryMappings = []mapping{
	{"text/html", "html,htm,shtml,shtm"},
	{"text/css", "css"},
	{"text/xml", "xml"},
	{"image/gif", "gif"},
	{"image/jpeg", "jpeg,jpg"},
	{"image/webp", "webp"},
	{"image/png", "png"},
	{"video/mp4", "mp4,m4v"},
	{"audio/x-m4a", "m4a"},
	{"audio/mp3", "mp3"},
	{"video/ogg", "ogv,ogm"},
	{"audio/ogg", "ogg,oga,opus"},
	{"video/webm", "webm"},
	{"audio/webm", "webm"},
	{"audio/wav", "wav"},
	{"application/xhtml+xml", "xhtml,xht,xhtm"},
	{"multipart/related", "mhtml,mht"},
}

// secondaryMappings are consulted last, after the platform registry,
// so the platform may override any of them. Note that some
// extensions legitimately repeat types from primaryMappings under a
// different name (png appears as both image/png and image/x-png).
var secondaryMappings = []mapping{
	{"application/octet-stream", "exe,com,bin"},
	{"application/gzip", "gz"},
	{"application/pdf", "pdf"},
	{"application/postscript", "ps,eps,ai"},
	{"application/javascript", "js"},
	{"application/font-woff", "woff"},
	{"image/bmp", "bmp"},
	{"image/x-icon", "ico"},
	{"image/vnd.microsoft.icon", "ico"},
	{"image/jpeg", "jfif,pjpeg,pjp"},
	{"image/tiff", "tiff,tif"},
	{"image/x-xbitmap", "xbm"},
	{"image/svg+xml", "svg,svgz"},
	{"image/x-png", "png"},
	{"message/rfc822", "eml"},
	{"text/plain", "txt,text"},
	{"text/html", "ehtml"},
	{"application/rss+xml", "rss"},
	{"application/rdf+xml", "rdf"},
	{"text/xml", "xsl,xslt"},
	{"application/x-shockwave-flash", "swf,swl"},
	{"application/pkcs7-mime", "p7m,p7c,p7z"},
	{"application/pkcs7-signature", "p7s"},
	{"application/x-mpegurl", "m3u8"},
	{"application/epub+zip", "epub"},
}

// Media types commonly seen for each wildcard-enumerable top-level
// type. These feed reverse lookups for "image/*" and friends: each
// member is asked of the platform registry in turn. From
// http://www.w3schools.com/media/media_mimeref.asp and
// http://plugindoc.mozdev.org/winmime.php
var standardImageTypes = []string{
	"image/bmp",
	"image/cis-cod",
	"image/gif",
	"image/ief",
	"image/jpeg",
	"image/webp",
	"image/pict",
	"image/pipeg",
	"image/png",
	"image/svg+xml",
	"image/tiff",
	"image/vnd.microsoft.icon",
	"image/x-cmu-raster",
	"image/x-cmx",
	"image/x-icon",
	"image/x-portable-anymap",
	"image/x-portable-bitmap",
	"image/x-portable-graymap",
	"image/x-portable-pixmap",
	"image/x-rgb",
	"image/x-xbitmap",
	"image/x-xpixmap",
	"image/x-xwindowdump",
}

var standardAudioTypes = []string{
	"audio/aac",
	"audio/aiff",
	"audio/amr",
	"audio/basic",
	"audio/midi",
	"audio/mp3",
	"audio/mp4",
	"audio/mpeg",
	"audio/mpeg3",
	"audio/ogg",
	"audio/vorbis",
	"audio/wav",
	"audio/webm",
	"audio/x-m4a",
	"audio/x-ms-wma",
	"audio/vnd.rn-realaudio",
	"audio/vnd.wave",
}

var standardVideoTypes = []string{
	"video/avi",
	"video/divx",
	"video/flc",
	"video/mp4",
	"video/mpeg",
	"video/ogg",
	"video/quicktime",
	"video/sd-video",
	"video/webm",
	"video/x-dv",
	"video/x-m4v",
	"video/x-mpeg",
	"video/x-ms-asf",
	"video/x-ms-wmv",
}

// group names the media types enumerated for one "type/*" wildcard.
type group struct {
	leading string
	members []string
}

// standardGroups maps "type/" prefixes to their enumerable member
// types. A wildcard whose prefix has no group here enumerates
// nothing from the platform; the hard-coded tables still contribute
// via their prefix scan.
var standardGroups = []group{
	{"image/", standardImageTypes},
	{"audio/", standardAudioTypes},
	{"video/", standardVideoTypes},
}
