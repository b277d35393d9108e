package server

const uploadForm = `<!doctype html>
<html>
<head>
<title>Upload Image</title>
<style>
	body { padding: 20px; font-family: sans-serif; background: lightblue; text-align: center; }
	h1 { color: navy; }
	form { background: white; padding: 20px; border-radius: 8px; display: inline-block; text-align: left; }
	.form-group { margin-bottom: 10px; }
	.number-options { display: none; overflow: hidden; }
	label { display: inline-block; margin-bottom: 5px; font-weight: bold; }
	input[type="file"] { border: 1px solid #ddd; padding: 8px; border-radius: 4px; }
	input[type="checkbox"], input[type="number"] { margin-right: 10px; }
	input[type="number"] { width: 30px; }
	input[type="submit"] { background: navy; color: white; border: none; padding: 10px 15px; border-radius: 4px; cursor: pointer; font-size: 16px; }
	input[type="submit"]:hover { background: darkblue; }
</style>
</head>
<body>
<h1>Convert bmp, png, gif to txt file</h1>
<form method="post" enctype="multipart/form-data">
	<div class="form-group">
		<label>Select Image File (PNG, GIF, BMP):</label>
		<input type="file" name="file" accept=".png, .gif, .bmp">
	</div>
	<div class="form-group">
		<input type="checkbox" name="duplicate_rows" value="duplicate_rows" id="duplicate_rows">
		<label for="duplicate_rows">Duplicate rows to rear bed</label>
	</div>
	<div class="form-group">
		<input type="checkbox" name="add_empty_rows" value="add_empty_rows" id="add_empty_rows" onclick="toggleNumberOptions()">
		<label for="add_empty_rows">Add space for de-/increase edits</label>
	</div>
	<div class="number-options">
		<div class="form-group">
			<label>Number of empty lines for increase edits:</label>
			<input type="number" name="empty_lines_increase" value="1" min="0">
		</div>
		<div class="form-group">
			<label>Number of empty lines for decrease edits:</label>
			<input type="number" name="empty_lines_decrease" value="4" min="0">
		</div>
	</div>
	<div class="form-group">
		<input type="submit" value="Convert">
	</div>
</form>
<script>
	function toggleNumberOptions() {
		var checkBox = document.getElementById("add_empty_rows");
		var numberOptions = document.querySelector(".number-options");
		numberOptions.style.display = checkBox.checked ? "block" : "none";
		numberOptions.style.height = checkBox.checked ? "auto" : "0";
	}
</script>
</body>
</html>
`
