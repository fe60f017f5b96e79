package catalog

// Builtin returns the catalogs shipped with typepanel.
func Builtin() Set {
	return Set{
		FontFamily: {
			{ID: "open-sans", Label: "Open Sans", Value: "Open Sans", Class: "font-open-sans"},
			{ID: "pt-sans", Label: "PT Sans", Value: "PT Sans", Class: "font-pt-sans"},
			{ID: "ubuntu", Label: "Ubuntu", Value: "Ubuntu", Class: "font-ubuntu"},
			{ID: "cormorant-garamond", Label: "Cormorant Garamond", Value: "Cormorant Garamond", Class: "font-cormorant-garamond"},
			{ID: "days-one", Label: "Days One", Value: "Days One", Class: "font-days-one"},
			{ID: "merriweather", Label: "Merriweather", Value: "Merriweather", Class: "font-merriweather"},
		},
		FontSize: {
			{ID: "18px", Label: "18px", Value: "18px", Class: "font-size-18"},
			{ID: "24px", Label: "24px", Value: "24px", Class: "font-size-24"},
			{ID: "38px", Label: "38px", Value: "38px", Class: "font-size-38"},
		},
		FontColor: {
			{ID: "black", Label: "Black", Value: "#000", Class: "font-black"},
			{ID: "white", Label: "White", Value: "#fff", Class: "font-white"},
			{ID: "gray", Label: "Gray", Value: "#c4c4c4", Class: "font-gray"},
			{ID: "pink", Label: "Pink", Value: "#fed7ec", Class: "font-pink"},
			{ID: "fuchsia", Label: "Fuchsia", Value: "#fd24af", Class: "font-fuchsia"},
			{ID: "yellow", Label: "Yellow", Value: "#ffc802", Class: "font-yellow"},
			{ID: "green", Label: "Green", Value: "#80d994", Class: "font-green"},
			{ID: "blue", Label: "Blue", Value: "#6fc1fd", Class: "font-blue"},
			{ID: "purple", Label: "Purple", Value: "#5f00ff", Class: "font-purple"},
		},
		BackgroundColor: {
			{ID: "white", Label: "White", Value: "#fff", Class: "bg-white"},
			{ID: "black", Label: "Black", Value: "#000", Class: "bg-black"},
			{ID: "gray", Label: "Gray", Value: "#c4c4c4", Class: "bg-gray"},
			{ID: "pink", Label: "Pink", Value: "#fed7ec", Class: "bg-pink"},
			{ID: "yellow", Label: "Yellow", Value: "#ffc802", Class: "bg-yellow"},
			{ID: "green", Label: "Green", Value: "#80d994", Class: "bg-green"},
			{ID: "blue", Label: "Blue", Value: "#6fc1fd", Class: "bg-blue"},
			{ID: "purple", Label: "Purple", Value: "#5f00ff", Class: "bg-purple"},
		},
		ContentWidth: {
			{ID: "wide", Label: "Wide", Value: "1394px", Class: "width-wide"},
			{ID: "medium", Label: "Medium", Value: "800px", Class: "width-medium"},
			{ID: "narrow", Label: "Narrow", Value: "548px", Class: "width-narrow"},
		},
	}
}

// DefaultSelection is the built-in initial draft and reset target.
func DefaultSelection() Selection {
	set := Builtin()
	return Selection{
		FontFamily:      set[FontFamily][0],
		FontSize:        set[FontSize][0],
		FontColor:       set[FontColor][0],
		BackgroundColor: set[BackgroundColor][0],
		ContentWidth:    set[ContentWidth][1],
	}
}
