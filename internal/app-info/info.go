package app_info

// NAME the name of this application
const NAME = "vlanscan"

// VERSION the current version of this application
const VERSION = "v1.0.0"
