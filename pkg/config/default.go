package config

// defaultConfigTOML is written to the config path on first run.
const defaultConfigTOML = `# pacfetch configuration
#
# stats entries are rendered in order. Each entry is a stat key or a
# reference to a named title defined under [display.titles.<name>].
#
# Stat keys: installed, upgradable, last_update, download_size,
# installed_size, net_upgrade_size, orphaned_packages, cache_size, disk,
# mirror_url

[display]
stats = [
  "title.main",
  "installed",
  "upgradable",
  "last_update",
  "download_size",
  "installed_size",
  "net_upgrade_size",
  "orphaned_packages",
  "cache_size",
  "disk",
  "mirror_url",
]

# Built-in art: PACMAN_DEFAULT, PACMAN_SMALL. Use NONE to disable, or give
# a path to your own art file.
ascii = "PACMAN_DEFAULT"

# Color name, #RRGGBB, or none.
ascii_color = "yellow"

[display.glyph]
glyph = ": "

# Titles support two styles:
#   stacked   text on one line, a separator line beneath it
#   embedded  text inside the separator line, between the cap glyphs
#
# width is "title" (fit the text), "content" (match the widest line of the
# whole block), or a number of columns. align is left, center, or right.
[display.titles.main]
text = "default"          # default | pacman_ver | pacfetch_ver | any literal
text_color = "bright_yellow"
line_color = "none"
style = "stacked"
width = "title"
line = "-"
left_cap = ""
right_cap = ""

[disk]
path = "/"
`
