package scaffold

// File is a single generated artifact: a path relative to the project root
// and its full contents.
type File struct {
	Path    string
	Content string
}

// GenerateProject assembles every artifact for the given answers in a
// stable order. It is a pure function; the caller decides where (and
// whether) the files land on disk.
func GenerateProject(answers WizardAnswers) []File {
	chain := ChainByID(answers.Chain)

	files := []File{
		{Path: "package.json", Content: BuildManifest(answers)},
		{Path: ".env.example", Content: BuildEnvTemplate(answers, chain)},
		{Path: "scripts/register.ts", Content: BuildRegistrationScript(answers, chain)},
		{Path: "tsconfig.json", Content: BuildTSConfig()},
		{Path: ".gitignore", Content: BuildGitignore()},
	}

	if answers.HasFeature(FeatureA2A) {
		files = append(files, File{Path: "src/a2a-server.ts", Content: BuildA2AServer(answers)})
	}
	if answers.HasFeature(FeatureMCP) {
		files = append(files, File{Path: "src/mcp-server.ts", Content: BuildMCPServer(answers)})
	}

	files = append(files, File{Path: "README.md", Content: BuildReadme(answers, chain)})
	return files
}
