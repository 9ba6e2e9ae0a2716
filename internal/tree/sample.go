package tree

// Sample returns the built-in dataset. The nested 工作 and 假期 folders
// point at paths that have no listing of their own.
func Sample() Mapping {
	return Mapping{
		Root: {
			{ID: "1", Name: "文档", Kind: KindFolder, ChildPath: "root/1"},
			{ID: "2", Name: "图片", Kind: KindFolder, ChildPath: "root/2"},
			{ID: "3", Name: "profile.jpg", Kind: KindImage, ImageURI: "https://picsum.photos/200"},
		},
		"root/1": {
			{ID: "4", Name: "工作", Kind: KindFolder, ChildPath: "root/1/4"},
			{ID: "5", Name: "resume.pdf", Kind: KindFile},
		},
		"root/2": {
			{ID: "6", Name: "假期", Kind: KindFolder, ChildPath: "root/2/6"},
			{ID: "7", Name: "beach.jpg", Kind: KindImage, ImageURI: "https://picsum.photos/200/300"},
			{ID: "8", Name: "mountains.jpg", Kind: KindImage, ImageURI: "https://picsum.photos/300/200"},
		},
	}
}
