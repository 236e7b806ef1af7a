package catalog

// Labs is the authoritative ordered list of all tracked labs. Column names in the
// participants table match these strings exactly; display order follows this slice.
var Labs = []string{
	"The Basics of Google Cloud Compute",
	"Get Started with Cloud Storage",
	"Get Started with Pub_Sub",
	"Get Started with API Gateway",
	"Get Started with Looker",
	"Get Started with Dataplex",
	"Get Started with Google Workspace Tools",
	"App Building with AppSheet",
	"Develop with Apps Script and AppSheet",
	"Develop GenAI Apps with Gemini and Streamlit",
	"Build a Website on Google Cloud",
	"Set Up a Google Cloud Network",
	"Store, Process, and Manage Data on Google Cloud - Console",
	"Cloud Run Functions: 3 Ways",
	"App Engine: 3 Ways",
	"Cloud Speech API: 3 Ways",
	"Analyze Speech and Language with Google APIs",
	"Monitoring in Google Cloud",
	"Prompt Design in Vertex AI",
}

// CompletedMarker is the literal cell value that counts as a finished lab.
const CompletedMarker = "Yes"

// Names returns a fresh copy of the catalog so callers cannot mutate the package state.
func Names() []string {
	out := make([]string, len(Labs))
	copy(out, Labs)
	return out
}

// Contains reports whether name is a tracked lab.
func Contains(name string) bool {
	for _, lab := range Labs {
		if lab == name {
			return true
		}
	}
	return false
}
